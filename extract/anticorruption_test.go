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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featureIndex(t *testing.T, name string) int {
	t.Helper()
	for i, n := range anticorruptionFeatureNames {
		if n == name {
			return i
		}
	}
	t.Fatalf("unknown feature %q", name)
	return -1
}

func TestAntiCorruptionFeatureCount(t *testing.T) {
	a := NewAntiCorruption()
	features, err := a.ExtractDomainFeatures(sampleStatute)
	require.NoError(t, err)
	assert.Len(t, features, len(a.FeatureNames()))
	assert.Len(t, a.FeatureNames(), 72)
}

func TestAntiCorruptionFixedLength(t *testing.T) {
	a := NewAntiCorruption()

	short, err := a.ExtractDomainFeatures("Nothing relevant here.")
	require.NoError(t, err)
	long, err := a.ExtractDomainFeatures(sampleStatute)
	require.NoError(t, err)
	empty, err := a.ExtractDomainFeatures("")
	require.NoError(t, err)

	assert.Equal(t, len(short), len(long))
	assert.Equal(t, len(short), len(empty))
}

func TestAntiCorruptionIrrelevantTextScoresZero(t *testing.T) {
	a := NewAntiCorruption()
	features, err := a.ExtractDomainFeatures(
		"The weather in spring is mild. Birds sing in these gardens at dawn.")
	require.NoError(t, err)

	for i, v := range features {
		assert.Zero(t, v, "feature %s", anticorruptionFeatureNames[i])
	}
}

func TestAntiCorruptionProhibitionScope(t *testing.T) {
	a := NewAntiCorruption()
	text := `No person shall offer or give a bribe to any foreign public official.
Whoever shall accept a bribe commits an offense.`
	features, err := a.ExtractDomainFeatures(text)
	require.NoError(t, err)

	assert.Positive(t, features[featureIndex(t, "bribery_density")])
	assert.Positive(t, features[featureIndex(t, "giving_bribes_score")])
	assert.Positive(t, features[featureIndex(t, "receiving_bribes_score")])
	assert.Positive(t, features[featureIndex(t, "foreign_officials_mentions")])
	assert.Zero(t, features[featureIndex(t, "facilitation_payments_mentions")])
}

func TestAntiCorruptionCooccurrenceNeedsProximity(t *testing.T) {
	a := NewAntiCorruption()

	// The verb and the bribery stem appear, but far apart.
	filler := ""
	for range 120 {
		filler += "lorem ipsum "
	}
	text := "Any person may give notice to the registrar. " + filler +
		" Corruption of minors is addressed elsewhere."
	features, err := a.ExtractDomainFeatures(text)
	require.NoError(t, err)

	assert.Zero(t, features[featureIndex(t, "giving_bribes_score")])
}

func TestAntiCorruptionPenalties(t *testing.T) {
	a := NewAntiCorruption()
	text := `A criminal fine of $2,000,000 or imprisonment of 5 years, or both.
Repeat offenders face enhanced penalties of up to 10 years and million dollar fines.`
	features, err := a.ExtractDomainFeatures(text)
	require.NoError(t, err)

	assert.Positive(t, features[featureIndex(t, "criminal_penalties")])
	assert.Equal(t, 1.0, features[featureIndex(t, "million_dollar_penalties")])
	assert.Equal(t, 0.0, features[featureIndex(t, "billion_dollar_penalties")])
	assert.Equal(t, 2.0, features[featureIndex(t, "prison_terms_count")])
	assert.Equal(t, 10.0, features[featureIndex(t, "max_prison_term")])
	assert.Equal(t, 7.5, features[featureIndex(t, "avg_prison_term")])
	assert.Equal(t, 1.0, features[featureIndex(t, "penalty_multipliers")]) // "enhanced"
}

func TestAntiCorruptionMonetaryThresholds(t *testing.T) {
	a := NewAntiCorruption()
	text := "Fines range from $10,000 to $1,000,000 per violation."
	features, err := a.ExtractDomainFeatures(text)
	require.NoError(t, err)

	assert.Equal(t, 2.0, features[featureIndex(t, "monetary_thresholds_count")])
	assert.Equal(t, 1000000.0, features[featureIndex(t, "max_threshold")])
	assert.Equal(t, 10000.0, features[featureIndex(t, "min_threshold")])
}

func TestAntiCorruptionComplianceAndDefenses(t *testing.T) {
	a := NewAntiCorruption()
	text := `Each entity shall maintain a compliance program with risk assessment,
internal controls, and due diligence procedures conducted in good faith,
consistent with OECD recommendations.`
	features, err := a.ExtractDomainFeatures(text)
	require.NoError(t, err)

	assert.Positive(t, features[featureIndex(t, "compliance_program_mentions")])
	assert.Positive(t, features[featureIndex(t, "internal_controls_mentions")])
	assert.Positive(t, features[featureIndex(t, "program_completeness")])
	assert.Equal(t, 1.0, features[featureIndex(t, "oecd_standards")])
	assert.Equal(t, 1.0, features[featureIndex(t, "compliance_defense")])
	assert.Equal(t, 1.0, features[featureIndex(t, "due_diligence_defense")])
	assert.Equal(t, 1.0, features[featureIndex(t, "good_faith_defense")])
}

func TestAntiCorruptionWhistleblowerAndJurisdiction(t *testing.T) {
	a := NewAntiCorruption()
	text := `A whistleblower who reports through the hotline receives protection from
retaliation, and their identity remains confidential. This act applies to conduct
in interstate commerce and has extraterritorial reach over any foreign national.`
	features, err := a.ExtractDomainFeatures(text)
	require.NoError(t, err)

	assert.Positive(t, features[featureIndex(t, "whistleblower_mentions")])
	assert.Positive(t, features[featureIndex(t, "non_retaliation_mentions")])
	assert.Positive(t, features[featureIndex(t, "confidentiality_mentions")])
	assert.Equal(t, 1.0, features[featureIndex(t, "reporting_channels")])
	assert.Positive(t, features[featureIndex(t, "interstate_commerce_mentions")])
	assert.Positive(t, features[featureIndex(t, "extraterritorial_mentions")])
	assert.Equal(t, 1.0, features[featureIndex(t, "international_elements")])
}
