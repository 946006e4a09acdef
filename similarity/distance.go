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
	"math"
	"time"

	"github.com/poiesic/memespace/core"
)

// DefaultHalfLife is the temporal decay half-life in years.
const DefaultHalfLife = 10.0

// CulturalDistance measures how far apart two legal contexts are on the
// cultural, economic, and corruption indicators they share. Each shared
// indicator contributes a [0,1] distance on its own scale; the result is
// their mean. With no shared indicators the distance defaults to a
// moderate 0.5 rather than claiming identity or total dissimilarity.
func CulturalDistance(a, b *core.LegalContext) float64 {
	var distances []float64

	// Hofstede dimensions live on a [0, 100] scale.
	for _, dim := range []string{
		"power_distance", "individualism", "masculinity",
		"uncertainty_avoidance", "long_term_orientation", "indulgence",
	} {
		va, okA := a.CulturalIndices[dim]
		vb, okB := b.CulturalIndices[dim]
		if okA && okB {
			distances = append(distances, math.Abs(va-vb)/100.0)
		}
	}

	// GDP per capita compares on a log scale; two orders of magnitude
	// saturate the distance.
	if va, vb, ok := shared(a.EconomicIndices, b.EconomicIndices, "gdp_per_capita"); ok && va > 0 && vb > 0 {
		logDiff := math.Abs(math.Log10(va) - math.Log10(vb))
		distances = append(distances, math.Min(1.0, logDiff/2.0))
	}
	// HDI and Gini are already [0, 1].
	if va, vb, ok := shared(a.EconomicIndices, b.EconomicIndices, "hdi"); ok {
		distances = append(distances, math.Abs(va-vb))
	}
	if va, vb, ok := shared(a.EconomicIndices, b.EconomicIndices, "gini_coefficient"); ok {
		distances = append(distances, math.Abs(va-vb))
	}

	// CPI is [0, 100], WGI control of corruption roughly [-2.5, 2.5].
	if va, vb, ok := shared(a.CorruptionIndices, b.CorruptionIndices, "cpi_score"); ok {
		distances = append(distances, math.Abs(va-vb)/100.0)
	}
	if va, vb, ok := shared(a.CorruptionIndices, b.CorruptionIndices, "wgi_control_corruption"); ok {
		distances = append(distances, math.Abs(va-vb)/5.0)
	}

	if len(distances) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, d := range distances {
		sum += d
	}
	return sum / float64(len(distances))
}

func shared(a, b map[string]float64, key string) (float64, float64, bool) {
	va, okA := a[key]
	vb, okB := b[key]
	return va, vb, okA && okB
}

// TemporalDecay converts the gap between two enactment dates into a
// distance in [0, 1) using exponential decay with the default half-life:
// texts enacted ten years apart sit at distance 0.5.
func TemporalDecay(a, b time.Time) float64 {
	return TemporalDecayHalfLife(a, b, DefaultHalfLife, 1.0)
}

// TemporalDecayHalfLife is TemporalDecay with an explicit half-life and
// distance ceiling.
func TemporalDecayHalfLife(a, b time.Time, halfLifeYears, maxDistance float64) float64 {
	years := math.Abs(a.Sub(b).Hours()) / 24 / 365.25
	lambda := math.Ln2 / halfLifeYears
	distance := maxDistance * (1 - math.Exp(-lambda*years))
	return math.Min(distance, maxDistance)
}

// familyDistances encodes doctrinal proximity between legal families.
// Symmetric; only one ordering is stored.
var familyDistances = map[[2]core.LegalFamily]float64{
	{core.CivilLaw, core.CommonLaw}:  0.6,
	{core.CivilLaw, core.Mixed}:      0.3,
	{core.CommonLaw, core.Mixed}:     0.3,
	{core.CivilLaw, core.Religious}:  0.8,
	{core.CommonLaw, core.Religious}: 0.8,
	{core.CivilLaw, core.Customary}:  0.9,
	{core.CommonLaw, core.Customary}: 0.9,
	{core.Mixed, core.Religious}:     0.5,
	{core.Mixed, core.Customary}:     0.7,
	{core.Religious, core.Customary}: 0.4,
}

// FamilyDistance returns the doctrinal distance between two legal
// families: 0 for the same family, 1 for any pair outside the known
// matrix.
func FamilyDistance(a, b core.LegalFamily) float64 {
	if a == b && a.Valid() {
		return 0.0
	}
	if d, ok := familyDistances[[2]core.LegalFamily{a, b}]; ok {
		return d
	}
	if d, ok := familyDistances[[2]core.LegalFamily{b, a}]; ok {
		return d
	}
	return 1.0
}

// DistanceWeights weighs the components of the composite memetic distance.
type DistanceWeights struct {
	Cosine     float64
	Cultural   float64
	Temporal   float64
	Structural float64
}

// DefaultDistanceWeights is the standard component weighting.
var DefaultDistanceWeights = DistanceWeights{
	Cosine:     0.4,
	Cultural:   0.3,
	Temporal:   0.2,
	Structural: 0.1,
}

type distanceConfig struct {
	weights         DistanceWeights
	includeCultural bool
	includeTemporal bool
}

// DistanceOption adjusts the composite memetic distance.
type DistanceOption func(*distanceConfig)

// WithWeights overrides the component weights. Weights are renormalized
// over the components actually present, so they need not sum to 1.
func WithWeights(w DistanceWeights) DistanceOption {
	return func(c *distanceConfig) {
		c.weights = w
	}
}

// WithoutCultural drops the cultural component; remaining weights are
// renormalized.
func WithoutCultural() DistanceOption {
	return func(c *distanceConfig) {
		c.includeCultural = false
	}
}

// WithoutTemporal drops the temporal component; remaining weights are
// renormalized.
func WithoutTemporal() DistanceOption {
	return func(c *distanceConfig) {
		c.includeTemporal = false
	}
}

// MemeticDistance is the composite distance between two extracted memes:
// cosine distance over the consolidated vectors plus cultural, temporal,
// and legal-family (structural) distance between their contexts, averaged
// under the configured weights.
func MemeticDistance(a, b *core.LegalMemeVector, opts ...DistanceOption) (float64, error) {
	cfg := distanceConfig{
		weights:         DefaultDistanceWeights,
		includeCultural: true,
		includeTemporal: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cosineSim, err := CosineMemes(a, b)
	if err != nil {
		return 0, err
	}

	total := cfg.weights.Cosine * (1.0 - cosineSim)
	weight := cfg.weights.Cosine

	if cfg.includeCultural {
		total += cfg.weights.Cultural * CulturalDistance(a.Context, b.Context)
		weight += cfg.weights.Cultural
	}
	if cfg.includeTemporal {
		total += cfg.weights.Temporal * TemporalDecay(a.Context.EnactmentDate, b.Context.EnactmentDate)
		weight += cfg.weights.Temporal
	}

	total += cfg.weights.Structural * FamilyDistance(a.Context.LegalFamily, b.Context.LegalFamily)
	weight += cfg.weights.Structural

	if weight > 0 {
		total /= weight
	}
	return total, nil
}

// MemeticSimilarity maps the composite distance into (0, 1]: identical
// memes score 1, similarity falls off as 1/(1+distance).
func MemeticSimilarity(a, b *core.LegalMemeVector, opts ...DistanceOption) (float64, error) {
	dist, err := MemeticDistance(a, b, opts...)
	if err != nil {
		return 0, err
	}
	return 1.0 / (1.0 + dist), nil
}
