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

// Mock is a test double for Embedder. It allows custom behavior injection
// via function fields; with none set it falls back to the Deterministic
// placeholder so it stays usable as a drop-in default.
type Mock struct {
	// EmbedTextFunc is called by EmbedText if set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float64, error)

	// EmbedTextsFunc is called by EmbedTexts if set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float64, error)

	fallback  *Deterministic
	callCount int
}

var _ Embedder = (*Mock)(nil)

// NewMock creates a mock embedder with deterministic default behavior.
func NewMock() *Mock {
	return &Mock{fallback: NewDeterministic(DefaultDim)}
}

// EmbedText generates a vector for one text, via the injected function if
// present.
func (m *Mock) EmbedText(ctx context.Context, text string) ([]float64, error) {
	m.callCount++
	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return m.fallback.EmbedText(ctx, text)
}

// EmbedTexts generates vectors for a batch of texts, via the injected
// function if present.
func (m *Mock) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	m.callCount++
	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}
	return m.fallback.EmbedTexts(ctx, texts)
}

// Dim returns the fallback dimension.
func (m *Mock) Dim() int {
	return m.fallback.Dim()
}

// CallCount returns the number of times any embed method was called.
func (m *Mock) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected functions.
func (m *Mock) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}
