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


// Package similarity measures how close legal meme vectors are to each
// other: plain cosine and euclidean measures over consolidated vectors,
// and the composite memetic distance that blends vector similarity with
// cultural, temporal, and legal-family distance between contexts.
//
// Batch operations (pairwise matrices, top-k ranking, k-means clustering)
// are deterministic; the parallel matrix variant distributes rows over a
// worker pool without changing the result.
package similarity
