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

import (
	"fmt"
	"math"

	"github.com/poiesic/memespace/core"
)

// Cosine computes cosine similarity between two vectors, clamped to [0, 1].
// Vectors are L2-normalized first; if either is the zero vector the
// similarity is 0 by definition.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, dimensionError(len(a), len(b))
	}

	normA, normB := core.Norm(a), core.Norm(b)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	dot /= normA * normB

	// Clamp floating point error.
	return math.Max(0, math.Min(1, dot)), nil
}

// CosineMemes computes cosine similarity between two extracted memes.
func CosineMemes(a, b *core.LegalMemeVector) (float64, error) {
	if !a.Extracted() || !b.Extracted() {
		return 0, core.ErrFeaturesNotExtracted
	}
	return Cosine(a.Vector, b.Vector)
}

// Euclidean computes the euclidean distance between two vectors after
// L2 normalization. Zero vectors are left as is.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, dimensionError(len(a), len(b))
	}

	na, nb := core.Normalize(a), core.Normalize(b)
	sum := 0.0
	for i := range na {
		d := na[i] - nb[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// EuclideanMemes computes euclidean distance between two extracted memes.
func EuclideanMemes(a, b *core.LegalMemeVector) (float64, error) {
	if !a.Extracted() || !b.Extracted() {
		return 0, core.ErrFeaturesNotExtracted
	}
	return Euclidean(a.Vector, b.Vector)
}

func dimensionError(a, b int) error {
	return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, a, b)
}
