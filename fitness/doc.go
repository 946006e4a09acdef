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


// Package fitness scores the evolutionary success of legal memes: six
// sub-scores (survival, replication, adaptation, enforcement, cultural,
// temporal) combined under configurable weights, selection-pressure
// rankings over a population, and trajectory prediction.
//
// Population-relative scores degrade gracefully: with an empty reference
// population survival falls back to absolute age, replication and
// adaptation to zero. An empty population is never an error.
package fitness
