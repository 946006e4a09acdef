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


package badger

import "fmt"

// Key prefixes for the meme store and its jurisdiction index.
const (
	memePrefix             = "meme"
	memeJurisdictionPrefix = "memejur"
)

// makeMemeKey generates the primary key for a document by text ID.
func makeMemeKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", memePrefix, id))
}

// makeJurisdictionKey generates a composite key for the jurisdiction
// index. Format: prefix:jurisdiction:id; text IDs carry no colons, so the
// composite parses unambiguously from the right.
func makeJurisdictionKey(jurisdiction, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", memeJurisdictionPrefix, jurisdiction, id))
}

// makePartialJurisdictionKey generates the iteration prefix for one
// jurisdiction.
func makePartialJurisdictionKey(jurisdiction string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", memeJurisdictionPrefix, jurisdiction))
}
