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
	"math"
	"sort"

	"github.com/poiesic/memespace/core"
)

// Pressure is one evolutionary selection scenario. Each recombines the
// fitness sub-scores in a fixed way.
type Pressure string

const (
	CulturalConvergence        Pressure = "cultural_convergence"
	EconomicEfficiency         Pressure = "economic_efficiency"
	InstitutionalCompatibility Pressure = "institutional_compatibility"
	EnforcementEffectiveness   Pressure = "enforcement_effectiveness"
	InternationalHarmonization Pressure = "international_harmonization"
	DemocraticLegitimacy       Pressure = "democratic_legitimacy"
)

// Pressures lists every selection pressure.
var Pressures = []Pressure{
	CulturalConvergence, EconomicEfficiency, InstitutionalCompatibility,
	EnforcementEffectiveness, InternationalHarmonization, DemocraticLegitimacy,
}

// ParsePressure validates a selection pressure name.
func ParsePressure(name string) (Pressure, error) {
	for _, p := range Pressures {
		if Pressure(name) == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPressure, name)
}

// pressureFitness recombines sub-scores for one meme under one pressure.
func (c *Calculator) pressureFitness(meme *core.LegalMemeVector, population []*core.LegalMemeVector, pressure Pressure) (float64, error) {
	switch pressure {
	case CulturalConvergence:
		return culturalFitness(meme), nil

	case EconomicEfficiency:
		return enforcementFitness(meme)*0.6 + culturalFitness(meme)*0.4, nil

	case InstitutionalCompatibility:
		return c.adaptationFitness(meme, population)

	case EnforcementEffectiveness:
		return enforcementFitness(meme), nil

	case InternationalHarmonization:
		return c.replicationFitness(meme, population)

	case DemocraticLegitimacy:
		return (c.temporalFitness(meme, c.now()) + culturalFitness(meme)) / 2.0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPressure, pressure)
}

// Ranked pairs a meme with its fitness under a selection pressure.
type Ranked struct {
	Meme    *core.LegalMemeVector
	Fitness float64
}

// EvolutionaryPressure scores every meme in the population under one
// selection pressure and returns them ranked best first. Intensity is an
// exponent on each score: above 1 sharpens selection, below 1 softens it.
// Ties keep input order.
func (c *Calculator) EvolutionaryPressure(population []*core.LegalMemeVector, pressure Pressure, intensity float64) ([]Ranked, error) {
	if _, err := ParsePressure(string(pressure)); err != nil {
		return nil, err
	}

	ranked := make([]Ranked, 0, len(population))
	for _, meme := range population {
		score, err := c.pressureFitness(meme, population, pressure)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, Ranked{Meme: meme, Fitness: math.Pow(score, intensity)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})
	return ranked, nil
}

// Trajectory is a forward-looking fitness estimate for one meme.
type Trajectory struct {
	CurrentFitness      float64              `json:"current_fitness"`
	PredictedFitness    float64              `json:"predicted_fitness"`
	TemporalDecayFactor float64              `json:"temporal_decay_factor"`
	PressurePredictions map[Pressure]float64 `json:"pressure_predictions"`
	SurvivalProbability float64              `json:"survival_probability"`
}

// PredictTrajectory projects a meme's fitness over a time horizon: 40%
// current overall fitness, 40% mean fitness under the expected pressures,
// 20% pure temporal decay with a 15-year half-life constant. With no
// pressures given it assumes cultural convergence and international
// harmonization.
func (c *Calculator) PredictTrajectory(meme *core.LegalMemeVector, population []*core.LegalMemeVector, horizonYears float64, pressures ...Pressure) (Trajectory, error) {
	if meme == nil {
		return Trajectory{}, ErrNilMeme
	}
	if len(pressures) == 0 {
		pressures = []Pressure{CulturalConvergence, InternationalHarmonization}
	}

	current, err := c.Calculate(meme, population)
	if err != nil {
		return Trajectory{}, err
	}

	predictions := make(map[Pressure]float64, len(pressures))
	sum := 0.0
	for _, pressure := range pressures {
		if _, err := ParsePressure(string(pressure)); err != nil {
			return Trajectory{}, err
		}
		score, err := c.pressureFitness(meme, population, pressure)
		if err != nil {
			return Trajectory{}, err
		}
		predictions[pressure] = score
		sum += score
	}
	avgPressure := sum / float64(len(pressures))

	decay := math.Exp(-horizonYears / 15.0)
	predicted := 0.4*current.Overall + 0.4*avgPressure + 0.2*decay

	return Trajectory{
		CurrentFitness:      current.Overall,
		PredictedFitness:    predicted,
		TemporalDecayFactor: decay,
		PressurePredictions: predictions,
		SurvivalProbability: math.Min(1.0, predicted),
	}, nil
}
