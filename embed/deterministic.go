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

import (
	"context"
	"encoding/binary"
	"math/rand"

	"github.com/go-crypt/x/blake2b"
)

// DefaultDim matches the output width of typical sentence-transformer
// embedding models, so the placeholder can later be swapped for one
// without changing vector layouts.
const DefaultDim = 384

// Deterministic is the placeholder semantic provider: a standard-normal
// pseudo-random vector seeded by a BLAKE2b hash of the text. Identical
// texts always produce identical vectors; different texts produce, with
// overwhelming probability, different ones. The output is a stable
// fingerprint, not a semantic embedding.
type Deterministic struct {
	dim      int
	baseSeed int64
}

var _ Embedder = (*Deterministic)(nil)

// DeterministicOption configures a Deterministic embedder.
type DeterministicOption func(*Deterministic)

// WithBaseSeed mixes an explicit seed into every text seed, so independent
// batch runs can be told apart while each stays reproducible.
func WithBaseSeed(seed int64) DeterministicOption {
	return func(d *Deterministic) {
		d.baseSeed = seed
	}
}

// NewDeterministic creates a placeholder embedder of the given dimension.
// A dim of 0 or less falls back to DefaultDim.
func NewDeterministic(dim int, opts ...DeterministicOption) *Deterministic {
	if dim <= 0 {
		dim = DefaultDim
	}
	d := &Deterministic{dim: dim}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dim returns the fixed output dimension.
func (d *Deterministic) Dim() int {
	return d.dim
}

// EmbedText generates the stable fingerprint vector for one text.
// It never fails and ignores the context.
func (d *Deterministic) EmbedText(_ context.Context, text string) ([]float64, error) {
	rng := rand.New(rand.NewSource(d.textSeed(text)))
	vector := make([]float64, d.dim)
	for i := range vector {
		vector[i] = rng.NormFloat64()
	}
	return vector, nil
}

// EmbedTexts generates fingerprint vectors for a batch of texts.
func (d *Deterministic) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, 0, len(texts))
	for _, text := range texts {
		v, err := d.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

func (d *Deterministic) textSeed(text string) int64 {
	h, _ := blake2b.New(8, nil)
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return int64(binary.LittleEndian.Uint64(sum)) ^ d.baseSeed
}
