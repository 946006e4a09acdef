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


package fitness

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/memespace/core"
)

// EvaluatePopulation computes fitness metrics for every meme in the
// population, each against all the others, distributing the work over a
// worker pool. poolSize < 1 selects half the CPUs. Results are indexed
// like the input; any failing meme fails the whole evaluation.
func (c *Calculator) EvaluatePopulation(population []*core.LegalMemeVector, poolSize int) ([]Metrics, error) {
	if len(population) == 0 {
		return nil, nil
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

	results := make([]Metrics, len(population))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for i, meme := range population {
		wg.Add(1)
		idx, target := i, meme
		submitErr := pool.Submit(func() {
			defer wg.Done()
			metrics, err := c.Calculate(target, population)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			results[idx] = metrics
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
	return results, nil
}
