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

import (
	"encoding/binary"
	"fmt"
	"maps"

	"github.com/go-crypt/x/blake2b"
)

// TextIDFromContent generates a deterministic text ID from the raw legal
// text using BLAKE2b hashing, so identical texts always share an ID.
func TextIDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return fmt.Sprintf("legal_text_%016x", binary.LittleEndian.Uint64(sum))
}

// LegalMemeVector is the aggregate root of the data model: a legal text,
// its context, the extracted feature channels, and their consolidation
// into one flat vector.
//
// The zero-value lifecycle is: construct with text and context, let an
// extractor populate Features and call Consolidate, then treat the meme as
// read-only for comparison and fitness purposes.
type LegalMemeVector struct {
	Text     string
	Context  *LegalContext
	TextID   string
	Features MemeFeatures
	Vector   []float64
	Metadata map[string]string

	normalized []float64
}

// MemeOption configures a LegalMemeVector during construction.
type MemeOption func(*LegalMemeVector)

// WithTextID overrides the content-derived text ID.
func WithTextID(id string) MemeOption {
	return func(m *LegalMemeVector) {
		if id != "" {
			m.TextID = id
		}
	}
}

// WithMetadata attaches free-form metadata. The map is copied.
func WithMetadata(metadata map[string]string) MemeOption {
	return func(m *LegalMemeVector) {
		m.Metadata = maps.Clone(metadata)
	}
}

// NewLegalMemeVector builds a meme with empty features and no vector.
func NewLegalMemeVector(text string, context *LegalContext, opts ...MemeOption) *LegalMemeVector {
	m := &LegalMemeVector{
		Text:     text,
		Context:  context,
		TextID:   TextIDFromContent(text),
		Metadata: map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Consolidate concatenates all non-empty feature channels in canonical
// order into Vector and drops any previously cached normalized copy.
// Returns ErrNoFeatures when every channel is empty, and
// ErrInvalidFeatureValue when a channel holds a NaN or infinite value.
func (m *LegalMemeVector) Consolidate() error {
	if m.Features.Empty() {
		return ErrNoFeatures
	}

	vector := make([]float64, 0, m.Features.TotalLen())
	for _, ch := range Channels {
		values := m.Features.Get(ch)
		if len(values) == 0 {
			continue
		}
		if err := ValidateVector(values); err != nil {
			return fmt.Errorf("channel %s: %w", ch, err)
		}
		vector = append(vector, values...)
	}

	m.Vector = vector
	m.normalized = nil
	return nil
}

// Extracted reports whether the consolidated vector is present.
func (m *LegalMemeVector) Extracted() bool {
	return m.Vector != nil
}

// Dim returns the consolidated vector length, 0 before extraction.
func (m *LegalMemeVector) Dim() int {
	return len(m.Vector)
}

// Normalized returns the L2-normalized copy of the consolidated vector.
// The stored Vector is never mutated; the unit-length copy is computed once
// and cached. A zero vector normalizes to itself.
func (m *LegalMemeVector) Normalized() ([]float64, error) {
	if !m.Extracted() {
		return nil, ErrFeaturesNotExtracted
	}
	if m.normalized == nil {
		m.normalized = Normalize(m.Vector)
	}
	return m.normalized, nil
}

// FeatureImportance returns each present channel's share of the vector's
// total L2 mass, normalized to sum to 1.
func (m *LegalMemeVector) FeatureImportance() (map[string]float64, error) {
	if !m.Extracted() {
		return nil, ErrFeaturesNotExtracted
	}

	importance := make(map[string]float64)
	total := 0.0
	idx := 0
	for _, ch := range Channels {
		n := len(m.Features.Get(ch))
		if n == 0 {
			continue
		}
		norm := Norm(m.Vector[idx : idx+n])
		importance[string(ch)] = norm
		total += norm
		idx += n
	}

	if total > 0 {
		for k, v := range importance {
			importance[k] = v / total
		}
	}
	return importance, nil
}

func invalidValueError(index int, value float64) error {
	return fmt.Errorf("%w: element %d is %v", ErrInvalidFeatureValue, index, value)
}
