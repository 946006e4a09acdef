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

// Metrics holds the six fitness sub-scores and their weighted combination.
// Every score lives in [0, 1].
type Metrics struct {
	Survival    float64 `json:"survival_fitness"`
	Replication float64 `json:"replication_fitness"`
	Adaptation  float64 `json:"adaptation_fitness"`
	Enforcement float64 `json:"enforcement_fitness"`
	Cultural    float64 `json:"cultural_fitness"`
	Temporal    float64 `json:"temporal_fitness"`

	Overall float64 `json:"overall_fitness"`
}

// Component names one fitness sub-score.
type Component string

const (
	ComponentSurvival    Component = "survival"
	ComponentReplication Component = "replication"
	ComponentAdaptation  Component = "adaptation"
	ComponentEnforcement Component = "enforcement"
	ComponentCultural    Component = "cultural"
	ComponentTemporal    Component = "temporal"
)

// Components lists every sub-score in aggregation order.
var Components = []Component{
	ComponentSurvival, ComponentReplication, ComponentAdaptation,
	ComponentEnforcement, ComponentCultural, ComponentTemporal,
}

// Weights assigns a relative weight to each sub-score. Weights are
// renormalized over the enabled components, so they need not sum to 1.
type Weights struct {
	Survival    float64
	Replication float64
	Adaptation  float64
	Enforcement float64
	Cultural    float64
	Temporal    float64
}

// DefaultWeights is the standard component weighting.
var DefaultWeights = Weights{
	Survival:    0.2,
	Replication: 0.25,
	Adaptation:  0.15,
	Enforcement: 0.15,
	Cultural:    0.15,
	Temporal:    0.1,
}

func (w Weights) of(c Component) float64 {
	switch c {
	case ComponentSurvival:
		return w.Survival
	case ComponentReplication:
		return w.Replication
	case ComponentAdaptation:
		return w.Adaptation
	case ComponentEnforcement:
		return w.Enforcement
	case ComponentCultural:
		return w.Cultural
	case ComponentTemporal:
		return w.Temporal
	}
	return 0
}

func (m *Metrics) score(c Component) float64 {
	switch c {
	case ComponentSurvival:
		return m.Survival
	case ComponentReplication:
		return m.Replication
	case ComponentAdaptation:
		return m.Adaptation
	case ComponentEnforcement:
		return m.Enforcement
	case ComponentCultural:
		return m.Cultural
	case ComponentTemporal:
		return m.Temporal
	}
	return 0
}

func (m *Metrics) setScore(c Component, v float64) {
	switch c {
	case ComponentSurvival:
		m.Survival = v
	case ComponentReplication:
		m.Replication = v
	case ComponentAdaptation:
		m.Adaptation = v
	case ComponentEnforcement:
		m.Enforcement = v
	case ComponentCultural:
		m.Cultural = v
	case ComponentTemporal:
		m.Temporal = v
	}
}
