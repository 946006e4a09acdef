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


// Package embed provides the semantic-channel vector providers.
//
// The core engine never calls an external model: the default provider is
// Deterministic, a stable text-seeded pseudo-random vector that works as a
// fingerprint for exact and near-duplicate detection but carries no learned
// linguistic meaning. Hosts that want a genuine embedding model can plug in
// the OpenAI-compatible provider instead; all providers sit behind the
// Embedder interface, so swapping them never touches consolidation,
// similarity, or fitness logic. Mock is the test double for hosts that need
// to inject failures or canned vectors.
package embed
