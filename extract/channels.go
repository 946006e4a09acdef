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


package extract

import (
	"strings"
	"time"

	"github.com/poiesic/memespace/core"
)

// legalKeywords is the fixed structural vocabulary: modal verbs, sanction
// terms, and document-structure markers characteristic of legal drafting.
var legalKeywords = []string{
	"shall", "must", "may", "should", "prohibited", "forbidden",
	"penalty", "fine", "imprisonment", "violation", "compliance",
	"section", "article", "paragraph", "subsection", "clause",
}

// conditionalWords mark conditional structure in legal text.
var conditionalWords = []string{"if", "unless", "provided", "except", "where", "when"}

// structuralFeatures captures formal structure and drafting patterns.
// Pure function of the text; context plays no part.
func (x *Extractor) structuralFeatures(text string) []float64 {
	lower := strings.ToLower(text)

	features := make([]float64, 0, 6+len(legalKeywords)+len(conditionalWords)+4)
	features = append(features,
		float64(len(text)),
		float64(len(strings.Fields(text))),
		float64(strings.Count(text, ".")+1),
		float64(strings.Count(text, "(")),
		float64(strings.Count(text, "[")),
		float64(strings.Count(text, ";")),
	)

	for _, keyword := range legalKeywords {
		features = append(features, float64(strings.Count(lower, keyword)))
	}
	for _, word := range conditionalWords {
		features = append(features, float64(strings.Count(lower, word)))
	}

	// Cross-reference structure
	features = append(features,
		float64(strings.Count(text, "§")),
		float64(strings.Count(lower, "see also")),
		float64(strings.Count(lower, "pursuant to")),
		float64(strings.Count(lower, "in accordance with")),
	)

	return features
}

// enactmentEras are the decade boundaries one-hot encoded in the temporal
// channel.
var enactmentEras = []int{1990, 2000, 2010, 2020}

// temporalFeatures encodes the text's position on the legal-evolution
// timeline relative to the evaluation time.
func temporalFeatures(ctx *core.LegalContext, now time.Time) []float64 {
	currentYear := now.Year()
	enactmentYear := ctx.EnactmentDate.Year()

	features := make([]float64, 0, 3+len(enactmentEras))
	features = append(features,
		float64(currentYear-enactmentYear),
		float64(len(ctx.AmendmentDates)),
	)

	if last, ok := ctx.LastAmendment(); ok {
		features = append(features, float64(currentYear-last.Year()))
	} else {
		features = append(features, float64(currentYear-enactmentYear))
	}

	for _, era := range enactmentEras {
		if enactmentYear >= era {
			features = append(features, 1.0)
		} else {
			features = append(features, 0.0)
		}
	}

	return features
}

// hofstedeDimensions are the six Hofstede cultural indicators.
var hofstedeDimensions = []string{
	"power_distance", "individualism", "masculinity",
	"uncertainty_avoidance", "long_term_orientation", "indulgence",
}

var economicIndicators = []string{"gdp_per_capita", "hdi", "gini_coefficient"}

var corruptionIndicators = []string{"cpi_score", "wgi_control_corruption", "transparency_index"}

// culturalFeatures passes the context's indicator values through and
// one-hot encodes the legal family. Missing indicators default to 0 in
// this channel only; the unknown-vs-zero distinction is lost here.
func culturalFeatures(ctx *core.LegalContext) []float64 {
	features := make([]float64, 0,
		len(hofstedeDimensions)+len(economicIndicators)+len(corruptionIndicators)+len(core.LegalFamilies))

	for _, dim := range hofstedeDimensions {
		features = append(features, ctx.CulturalIndices[dim])
	}
	for _, ind := range economicIndicators {
		features = append(features, ctx.EconomicIndices[ind])
	}
	for _, ind := range corruptionIndicators {
		features = append(features, ctx.CorruptionIndices[ind])
	}

	for _, family := range core.LegalFamilies {
		if ctx.LegalFamily == family {
			features = append(features, 1.0)
		} else {
			features = append(features, 0.0)
		}
	}

	return features
}

// penaltyGroups are keyword groups counted together in the enforcement
// channel, one feature per group.
var penaltyGroups = []struct {
	name     string
	keywords []string
}{
	{"fine", []string{"fine", "penalty", "monetary", "pecuniary"}},
	{"imprisonment", []string{"imprisonment", "jail", "prison", "incarceration"}},
	{"disqualification", []string{"disqualification", "suspension", "prohibition"}},
	{"restitution", []string{"restitution", "damages", "compensation", "disgorgement"}},
	{"administrative", []string{"license", "permit", "registration", "authorization"}},
}

var enforcementKeywords = []string{
	"investigation", "audit", "inspection", "monitoring",
	"reporting", "disclosure", "compliance program",
	"internal controls", "due diligence", "whistleblower",
}

var severityKeywords = []string{
	"criminal", "civil", "administrative", "regulatory",
	"severe", "substantial", "significant", "material",
}

// enforcementFeatures counts sanction, mechanism, and severity vocabulary.
func enforcementFeatures(text string) []float64 {
	lower := strings.ToLower(text)

	features := make([]float64, 0, len(penaltyGroups)+len(enforcementKeywords)+len(severityKeywords))

	for _, group := range penaltyGroups {
		count := 0
		for _, keyword := range group.keywords {
			count += strings.Count(lower, keyword)
		}
		features = append(features, float64(count))
	}

	for _, keyword := range enforcementKeywords {
		features = append(features, float64(strings.Count(lower, keyword)))
	}
	for _, keyword := range severityKeywords {
		features = append(features, float64(strings.Count(lower, keyword)))
	}

	return features
}
