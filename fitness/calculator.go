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
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/memespace/core"
	"github.com/poiesic/memespace/similarity"
)

// replicationThreshold is the cosine similarity above which a meme in
// another jurisdiction counts as a replication of the target.
const replicationThreshold = 0.7

// adaptationThreshold is the lower cosine bound for counting a meme as an
// adaptation of the target into a different cultural context.
const adaptationThreshold = 0.6

// Calculator computes fitness metrics for legal memes against a reference
// population. Construct once and share; Calculate has no side effects.
type Calculator struct {
	weights    Weights
	components map[Component]bool
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator) error

// WithWeights overrides the component weights.
func WithWeights(w Weights) Option {
	return func(c *Calculator) error {
		c.weights = w
		return nil
	}
}

// WithComponents restricts calculation to the given sub-scores. The rest
// stay zero and drop out of the weighted combination.
func WithComponents(components ...Component) Option {
	return func(c *Calculator) error {
		c.components = make(map[Component]bool, len(components))
		for _, component := range components {
			c.components[component] = true
		}
		return nil
	}
}

// WithClock sets the evaluation-time source. Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) error {
		if now != nil {
			c.now = now
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewCalculator creates a calculator with default weights and all
// components enabled.
func NewCalculator(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		weights: DefaultWeights,
		now:     time.Now,
		logger:  slog.Default().With("component", "fitness"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.components == nil {
		c.components = make(map[Component]bool, len(Components))
		for _, component := range Components {
			c.components[component] = true
		}
	}
	return c, nil
}

// Calculate computes the enabled sub-scores for a meme against a reference
// population and combines them under the configured weights. The
// population may be empty; population-relative scores then fall back to
// absolute measures.
func (c *Calculator) Calculate(meme *core.LegalMemeVector, population []*core.LegalMemeVector) (Metrics, error) {
	if meme == nil {
		return Metrics{}, ErrNilMeme
	}

	now := c.now()
	metrics := Metrics{}

	if c.components[ComponentSurvival] {
		metrics.Survival = c.survivalFitness(meme, population, now)
	}
	if c.components[ComponentReplication] {
		replication, err := c.replicationFitness(meme, population)
		if err != nil {
			return Metrics{}, err
		}
		metrics.Replication = replication
	}
	if c.components[ComponentAdaptation] {
		adaptation, err := c.adaptationFitness(meme, population)
		if err != nil {
			return Metrics{}, err
		}
		metrics.Adaptation = adaptation
	}
	if c.components[ComponentEnforcement] {
		metrics.Enforcement = enforcementFitness(meme)
	}
	if c.components[ComponentCultural] {
		metrics.Cultural = culturalFitness(meme)
	}
	if c.components[ComponentTemporal] {
		metrics.Temporal = c.temporalFitness(meme, now)
	}

	total, weight := 0.0, 0.0
	for _, component := range Components {
		if !c.components[component] {
			continue
		}
		w := c.weights.of(component)
		total += w * metrics.score(component)
		weight += w
	}
	if weight > 0 {
		metrics.Overall = total / weight
	}

	c.logger.Debug("calculated fitness",
		"text_id", meme.TextID, "overall", metrics.Overall)
	return metrics, nil
}

// survivalFitness rewards longevity. With a reference population the meme
// is ranked by age percentile; alone, twenty years of age counts as fully
// mature. Amendments within the last year are instability and subtract up
// to 0.5.
func (c *Calculator) survivalFitness(meme *core.LegalMemeVector, population []*core.LegalMemeVector, now time.Time) float64 {
	age := meme.Context.AgeYears(now)

	penalty := math.Min(0.5, float64(meme.Context.AmendmentsWithin(now, 365*24*time.Hour))*0.1)

	var rank float64
	if len(population) > 0 {
		ages := make([]float64, 0, len(population)+1)
		for _, ref := range population {
			ages = append(ages, ref.Context.AgeYears(now))
		}
		ages = append(ages, age)
		sort.Float64s(ages)
		below := sort.SearchFloat64s(ages, age)
		rank = float64(below) / float64(len(ages))
	} else {
		rank = math.Min(1.0, age/20.0)
	}

	return math.Max(0.0, rank-penalty)
}

// replicationFitness measures spread: the share of other jurisdictions in
// the population holding a highly similar meme. Zero when the population
// spans at most one jurisdiction.
func (c *Calculator) replicationFitness(meme *core.LegalMemeVector, population []*core.LegalMemeVector) (float64, error) {
	jurisdictions := make(map[string]bool)
	similar := 0

	for i, ref := range population {
		jurisdictions[ref.Context.Jurisdiction] = true
		if ref.Context.Jurisdiction == meme.Context.Jurisdiction {
			continue
		}
		if !ref.Extracted() || !meme.Extracted() {
			continue
		}
		sim, err := similarity.CosineMemes(meme, ref)
		if err != nil {
			return 0, fmt.Errorf("population meme %d: %w", i, err)
		}
		if sim >= replicationThreshold {
			similar++
		}
	}

	if len(jurisdictions) <= 1 {
		return 0.0, nil
	}
	rate := float64(similar) / float64(len(jurisdictions)-1)
	return math.Min(1.0, rate), nil
}

// adaptationFitness rewards memes that stay recognizably similar across
// culturally distant jurisdictions: each moderately similar foreign meme
// contributes similarity scaled by cultural distance.
func (c *Calculator) adaptationFitness(meme *core.LegalMemeVector, population []*core.LegalMemeVector) (float64, error) {
	var scores []float64

	for i, ref := range population {
		if ref.Context.Jurisdiction == meme.Context.Jurisdiction {
			continue
		}
		if !ref.Extracted() || !meme.Extracted() {
			continue
		}
		sim, err := similarity.CosineMemes(meme, ref)
		if err != nil {
			return 0, fmt.Errorf("population meme %d: %w", i, err)
		}
		if sim >= adaptationThreshold {
			distance := similarity.CulturalDistance(meme.Context, ref.Context)
			scores = append(scores, distance*sim)
		}
	}

	if len(scores) == 0 {
		return 0.0, nil
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return math.Min(1.0, sum/float64(len(scores))), nil
}

// enforcementIndicators are keyword categories; hitting any keyword in a
// category scores the whole category.
var enforcementIndicators = [][]string{
	{"fine", "penalty", "imprisonment", "sanctions"},
	{"investigation", "audit", "inspection", "examination"},
	{"monitoring", "supervision", "oversight", "compliance"},
	{"report", "disclosure", "notification", "declaration"},
	{"authority", "agency", "commission", "regulator"},
	{"procedure", "process", "mechanism", "system"},
}

var enforcementBonusGroups = [][]string{
	{"whistleblower", "whistle-blower", "protection"},
	{"corporate", "entity", "organization"},
	{"due diligence", "compliance program", "internal controls"},
}

// enforcementFitness scores the breadth of enforcement machinery in the
// text itself: category coverage plus up to 0.3 bonus for whistleblower
// protection, corporate liability, and due diligence provisions.
func enforcementFitness(meme *core.LegalMemeVector) float64 {
	lower := strings.ToLower(meme.Text)

	covered := 0
	for _, category := range enforcementIndicators {
		for _, keyword := range category {
			if strings.Contains(lower, keyword) {
				covered++
				break
			}
		}
	}
	score := float64(covered) / float64(len(enforcementIndicators))

	for _, group := range enforcementBonusGroups {
		for _, term := range group {
			if strings.Contains(lower, term) {
				score += 0.1
				break
			}
		}
	}

	return math.Min(1.0, score)
}

var sophisticatedTerms = []string{
	"compliance", "due diligence", "risk management",
	"governance", "transparency", "accountability",
}

// culturalFitness estimates how well the text fits its own cultural and
// economic context. Without cultural indices the score is a neutral 0.5.
func culturalFitness(meme *core.LegalMemeVector) float64 {
	indices := meme.Context.CulturalIndices
	if len(indices) == 0 {
		return 0.5
	}

	lower := strings.ToLower(meme.Text)
	var hofstede []float64

	// High power distance pairs with hierarchical drafting.
	if pd, ok := indices["power_distance"]; ok {
		if strings.Contains(lower, "authority") || strings.Contains(lower, "hierarchy") {
			hofstede = append(hofstede, pd/100.0)
		} else {
			hofstede = append(hofstede, (100-pd)/100.0)
		}
	}

	// High uncertainty avoidance pairs with long, prescriptive texts.
	if ua, ok := indices["uncertainty_avoidance"]; ok {
		complexity := float64(len(strings.Fields(meme.Text))) / 1000.0
		if ua > 70 {
			hofstede = append(hofstede, math.Min(1.0, complexity))
		} else {
			hofstede = append(hofstede, math.Max(0.0, 1.0-complexity))
		}
	}

	cultural := 0.5
	if len(hofstede) > 0 {
		sum := 0.0
		for _, s := range hofstede {
			sum += s
		}
		cultural = sum / float64(len(hofstede))
	}

	economic := 0.5
	if gdp := meme.Context.EconomicIndices["gdp_per_capita"]; gdp > 0 {
		sophistication := 0
		for _, term := range sophisticatedTerms {
			if strings.Contains(lower, term) {
				sophistication++
			}
		}
		ratio := float64(sophistication) / float64(len(sophisticatedTerms))
		if gdp > 30000 {
			economic = math.Min(1.0, ratio)
		} else {
			economic = math.Max(0.0, 1.0-ratio)
		}
	}

	return (cultural + economic) / 2.0
}

// modernConcepts signal forward-looking drafting in the temporal score.
var modernConcepts = []string{
	"digital", "electronic", "cyber", "online", "internet",
	"data protection", "privacy", "artificial intelligence",
	"blockchain", "cryptocurrency", "cloud computing",
	"sustainable", "environmental", "climate", "green",
}

// temporalFitness blends recency (10-year decay), modern-concept density
// (five concepts saturate), and a boost for amendments in the last three
// years.
func (c *Calculator) temporalFitness(meme *core.LegalMemeVector, now time.Time) float64 {
	age := meme.Context.AgeYears(now)
	recency := math.Exp(-age / 10.0)

	lower := strings.ToLower(meme.Text)
	modern := 0.0
	for _, concept := range modernConcepts {
		if strings.Contains(lower, concept) {
			modern += 1.0
		}
	}
	modernity := math.Min(1.0, modern/5.0)

	boost := math.Min(0.3, float64(meme.Context.AmendmentsWithin(now, 3*365*24*time.Hour))*0.1)

	return math.Min(1.0, 0.4*recency+0.4*modernity+0.2*boost)
}
