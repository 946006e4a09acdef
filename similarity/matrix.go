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
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/memespace/core"
)

// Function selects the similarity measure for batch operations.
type Function string

const (
	// FunctionCosine compares consolidated vectors only.
	FunctionCosine Function = "cosine"

	// FunctionMemetic folds in cultural, temporal, and family distance,
	// mapped to similarity as 1/(1+distance).
	FunctionMemetic Function = "memetic"
)

// ParseFunction validates a similarity function name.
func ParseFunction(name string) (Function, error) {
	switch Function(name) {
	case FunctionCosine, FunctionMemetic:
		return Function(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// memeSimilarity dispatches one pairwise comparison.
func memeSimilarity(fn Function, a, b *core.LegalMemeVector, opts ...DistanceOption) (float64, error) {
	switch fn {
	case FunctionCosine:
		return CosineMemes(a, b)
	case FunctionMemetic:
		return MemeticSimilarity(a, b, opts...)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, fn)
}

// Matrix computes the pairwise similarity matrix for a batch of extracted
// memes. The matrix is symmetric with 1.0 on the diagonal. Any failing
// pair fails the whole batch.
func Matrix(memes []*core.LegalMemeVector, fn Function, opts ...DistanceOption) ([][]float64, error) {
	if _, err := ParseFunction(string(fn)); err != nil {
		return nil, err
	}

	n := len(memes)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		matrix[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			sim, err := memeSimilarity(fn, memes[i], memes[j], opts...)
			if err != nil {
				return nil, fmt.Errorf("memes %d and %d: %w", i, j, err)
			}
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix, nil
}

// MatrixParallel computes the same matrix as Matrix, distributing rows
// over a worker pool. poolSize < 1 selects half the CPUs. The result is
// identical to the sequential version; the batch fails on the first
// pairwise error.
func MatrixParallel(memes []*core.LegalMemeVector, fn Function, poolSize int, opts ...DistanceOption) ([][]float64, error) {
	if _, err := ParseFunction(string(fn)); err != nil {
		return nil, err
	}

	if poolSize < 1 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	n := len(memes)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		row := i
		submitErr := pool.Submit(func() {
			defer wg.Done()
			matrix[row][row] = 1.0
			for j := row + 1; j < n; j++ {
				sim, err := memeSimilarity(fn, memes[row], memes[j], opts...)
				if err != nil {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("memes %d and %d: %w", row, j, err)
					})
					return
				}
				matrix[row][j] = sim
				matrix[j][row] = sim
			}
		})
		if submitErr != nil {
			wg.Done()
			errOnce.Do(func() { firstErr = submitErr })
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return matrix, nil
}

// Match pairs a candidate meme with its similarity to a target.
type Match struct {
	Meme  *core.LegalMemeVector
	Score float64
}

// MostSimilar ranks candidates by similarity to the target, descending,
// and returns the top k. Ties keep the candidates' input order. k larger
// than the candidate count returns everything.
func MostSimilar(target *core.LegalMemeVector, candidates []*core.LegalMemeVector, fn Function, k int, opts ...DistanceOption) ([]Match, error) {
	if _, err := ParseFunction(string(fn)); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(candidates))
	for i, candidate := range candidates {
		sim, err := memeSimilarity(fn, target, candidate, opts...)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		matches = append(matches, Match{Meme: candidate, Score: sim})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) && k >= 0 {
		matches = matches[:k]
	}
	return matches, nil
}
