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
	"math/rand"

	"github.com/poiesic/memespace/core"
)

// DefaultClusterSeed keeps clustering reproducible across runs unless the
// caller opts for a different seed.
const DefaultClusterSeed int64 = 42

type clusterConfig struct {
	seed          int64
	maxIterations int
}

// ClusterOption adjusts the k-means run.
type ClusterOption func(*clusterConfig)

// WithSeed sets the PRNG seed for centroid initialization. Fixed seed,
// fixed input order: fixed clustering.
func WithSeed(seed int64) ClusterOption {
	return func(c *clusterConfig) {
		c.seed = seed
	}
}

// WithMaxIterations caps the assign/update loop. Default is 100.
func WithMaxIterations(n int) ClusterOption {
	return func(c *clusterConfig) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// Cluster groups extracted memes into k clusters with seeded k-means over
// their consolidated vectors. Cluster IDs are 0..k-1; every meme lands in
// exactly one cluster. All memes must share one vector dimension.
func Cluster(memes []*core.LegalMemeVector, k int, opts ...ClusterOption) (map[int][]*core.LegalMemeVector, error) {
	if k < 1 || k > len(memes) {
		return nil, fmt.Errorf("%w: %d clusters for %d memes", ErrInvalidClusterCount, k, len(memes))
	}

	cfg := clusterConfig{seed: DefaultClusterSeed, maxIterations: 100}
	for _, opt := range opts {
		opt(&cfg)
	}

	dim := 0
	vectors := make([][]float64, len(memes))
	for i, m := range memes {
		if !m.Extracted() {
			return nil, fmt.Errorf("meme %s: %w", m.TextID, core.ErrFeaturesNotExtracted)
		}
		if i == 0 {
			dim = m.Dim()
		} else if m.Dim() != dim {
			return nil, fmt.Errorf("meme %s: %w", m.TextID, dimensionError(dim, m.Dim()))
		}
		vectors[i] = m.Vector
	}

	labels := kmeans(vectors, k, cfg.seed, cfg.maxIterations)

	clusters := make(map[int][]*core.LegalMemeVector, k)
	for i, label := range labels {
		clusters[label] = append(clusters[label], memes[i])
	}
	return clusters, nil
}

// kmeans is plain Lloyd's algorithm with seeded random initialization.
// Centroids start on k distinct input vectors; an emptied cluster keeps
// its previous centroid.
func kmeans(vectors [][]float64, k int, seed int64, maxIterations int) []int {
	rng := rand.New(rand.NewSource(seed))
	dim := len(vectors[0])

	perm := rng.Perm(len(vectors))
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), vectors[perm[i]]...)
	}

	labels := make([]int, len(vectors))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, v := range vectors {
			best, bestDist := 0, math.Inf(1)
			for c, centroid := range centroids {
				d := squaredDistance(v, centroid)
				if d < bestDist {
					best, bestDist = c, d
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vectors {
			c := labels[i]
			counts[c]++
			for j, x := range v {
				sums[c][j] += x
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for j := range sums[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}
	return labels
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
