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


package similarity

import "errors"

var (
	// ErrDimensionMismatch is returned when two vectors of different
	// lengths are compared. Wrapped errors carry both lengths.
	ErrDimensionMismatch = errors.New("vector dimensions don't match")

	// ErrUnknownFunction is returned for a similarity function name
	// outside the closed set.
	ErrUnknownFunction = errors.New("unknown similarity function")

	// ErrInvalidClusterCount is returned when the requested cluster count
	// is not in [1, len(memes)].
	ErrInvalidClusterCount = errors.New("invalid cluster count")
)
