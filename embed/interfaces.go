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


package embed

import "context"

// Embedder produces the semantic feature channel for a legal text.
// Implementations must be thread-safe for concurrent use and must return
// vectors of a fixed dimension independent of text length.
type Embedder interface {
	// EmbedText generates a vector for a single text string.
	EmbedText(ctx context.Context, text string) ([]float64, error)

	// EmbedTexts generates vectors for multiple texts in a batch.
	// The returned slice preserves input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)

	// Dim returns the fixed output dimension.
	Dim() int
}
