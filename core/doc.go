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


// Package core defines the data model for legal meme analysis.
//
// A legal text together with its jurisdictional context is represented as a
// LegalMemeVector: a set of named feature channels consolidated into one
// flat numeric vector. The vector is the unit of comparison for the
// similarity and fitness packages.
//
// LegalContext and the consolidated vector are treated as immutable once
// built; re-running extraction is the only way to change a meme's features.
package core
