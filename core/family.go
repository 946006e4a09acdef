// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// LegalFamily classifies a jurisdiction's legal tradition.
type LegalFamily string

const (
	CivilLaw  LegalFamily = "civil_law"
	CommonLaw LegalFamily = "common_law"
	Mixed     LegalFamily = "mixed"
	Religious LegalFamily = "religious"
	Customary LegalFamily = "customary"
)

// LegalFamilies lists all known families in a stable order. The order is
// load-bearing: the cultural feature channel one-hot encodes against it.
var LegalFamilies = []LegalFamily{CivilLaw, CommonLaw, Mixed, Religious, Customary}

// Valid reports whether f is one of the known legal families.
func (f LegalFamily) Valid() bool {
	switch f {
	case CivilLaw, CommonLaw, Mixed, Religious, Customary:
		return true
	}
	return false
}

// ParseLegalFamily converts a string into a LegalFamily.
// Returns ErrInvalidLegalFamily for unknown names.
func ParseLegalFamily(s string) (LegalFamily, error) {
	f := LegalFamily(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLegalFamily, s)
	}
	return f, nil
}
