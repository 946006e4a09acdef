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
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// anticorruptionPatterns extends the default table with anti-bribery
// vocabulary.
var anticorruptionPatterns = map[string]string{
	"bribery":              `\bbriber?y\b|\bbribe[sd]?\b|\bkickbacks?\b`,
	"corruption":           `\bcorruption\b|\bcorrupt\b|\bcorrupting\b`,
	"foreign_official":     `\bforeign\s+(?:public\s+)?officials?\b|\bpublic\s+officials?\b`,
	"facilitation_payment": `\bfacilitation\s+payments?\b|\bgrease\s+payments?\b`,

	"corporate_entity":    `\bcorporations?\b|\bentit(?:y|ies)\b|\bcompan(?:y|ies)\b|\borganizations?\b`,
	"successor_liability": `\bsuccessor\s+liabilit\w*\b|\bmergers?\b|\bacquisitions?\b`,
	"parent_subsidiary":   `\bparent\s+(?:company|corporation)\b|\bsubsidiar(?:y|ies)\b`,

	"compliance_program": `\bcompliance\s+(?:program|system|procedures?)\b`,
	"due_diligence":      `\bdue\s+diligence\b|\brisk\s+assessment\b`,
	"internal_controls":  `\binternal\s+controls?\b|\baccounting\s+controls?\b`,
	"training":           `\btraining\b|\beducation\b|\bawareness\b`,
	"monitoring":         `\bmonitoring\b|\bsupervision\b|\boversight\b`,
	"auditing":           `\baud(?:it|iting)\b|\breview\b|\binspection\b`,

	"criminal_penalty": `\bcriminal\s+(?:penalty|sanction|fine)\b|\bimprisonment\b`,
	"civil_penalty":    `\bcivil\s+(?:penalty|sanction|fine)\b|\badministrative\s+fine\b`,
	"disgorgement":     `\bdisgorgement\b|\brestitution\b|\bforfeiture\b`,
	"debarment":        `\bdebarment\b|\bsuspension\b|\bdisqualification\b`,

	"investigation": `\binvestigat(?:e|ion|ing)\b|\benquir(?:y|ies)\b`,
	"prosecution":   `\bprosecute\b|\bprosecution\b|\bcharges?\b`,
	"cooperation":   `\bcooperat(?:e|ion|ing)\b|\bassist(?:ance)?\b`,
	"disclosure":    `\bdisclos(?:e|ure|ing)\b|\breport(?:ing)?\b`,

	"whistleblower": `\bwhistle-?blower\b|\binformant\b|\breporter\b`,
	"protection":    `\bprotection\b|\bprotect(?:ed|ing)?\b`,
	"retaliation":   `\bretaliation\b|\breprisal\b|\bretribution\b`,
	"anonymity":     `\banonymity\b|\banonymous\b|\bconfidential\b`,

	"extraterritorial":    `\bextraterritorial\b|\boutside\s+(?:the\s+)?(?:united\s+states|jurisdiction)\b`,
	"foreign_commerce":    `\bforeign\s+commerce\b|\binternational\s+trade\b`,
	"interstate_commerce": `\binterstate\s+commerce\b|\bcommerce\s+clause\b`,
}

// prohibitedActivities groups activity verbs whose co-occurrence with
// bribery or corruption terms defines one prohibition-scope feature each.
// Order is part of the feature layout.
var prohibitedActivities = []struct {
	name     string
	keywords []string
}{
	{"giving_bribes", []string{"give", "offer", "pay", "provide", "transfer"}},
	{"receiving_bribes", []string{"receive", "accept", "solicit", "demand"}},
	{"promising_bribes", []string{"promise", "agree", "commit", "undertake"}},
	{"facilitating_corruption", []string{"facilitate", "enable", "assist", "help"}},
}

// liabilityStandards and the remaining keyword groups below define the
// corporate-liability, compliance, enforcement, whistleblower, and
// jurisdictional feature layouts. All are checked as substrings of the
// lowercased text.
var liabilityStandards = []struct {
	name     string
	keywords []string
}{
	{"strict_liability", []string{"strict liability", "absolute liability"}},
	{"vicarious_liability", []string{"vicarious liability", "respondeat superior"}},
	{"negligence_standard", []string{"negligence", "reasonable care", "due care"}},
	{"knowledge_standard", []string{"knowledge", "knew", "should have known", "willful blindness"}},
}

var affirmativeDefenses = []struct{ name, keyword string }{
	{"compliance_defense", "compliance program"},
	{"due_diligence_defense", "due diligence"},
	{"good_faith_defense", "good faith"},
	{"cooperation_defense", "cooperation"},
}

var penaltySeverityTerms = []string{
	"fine", "imprisonment", "prison", "jail", "incarceration",
	"felony", "misdemeanor", "violation", "offense",
}

var penaltyMultiplierTerms = []string{"double", "triple", "multiple", "enhanced", "aggravated"}

var programComponents = []string{
	"risk assessment", "policies and procedures", "training and communication",
	"monitoring and auditing", "reporting system", "disciplinary measures",
	"periodic review", "senior management oversight", "board oversight",
}

var thirdPartyTerms = []string{
	"third party", "vendor", "supplier", "contractor", "intermediary",
	"consultant", "agent", "distributor", "business partner",
}

var enforcementAuthorities = []string{
	"department of justice", "doj", "securities and exchange commission", "sec",
	"serious fraud office", "sfo", "financial conduct authority", "fca",
	"attorney general", "prosecutor", "district attorney",
}

var cooperationIncentives = []string{
	"cooperation agreement", "deferred prosecution", "non-prosecution agreement",
	"leniency", "mitigation", "reduction", "credit for cooperation",
}

var internationalCooperationTerms = []string{
	"mutual legal assistance", "extradition", "international cooperation",
	"treaty", "convention", "multilateral",
}

var reportingChannels = []string{
	"hotline", "helpline", "reporting system", "ombudsman",
	"ethics line", "compliance officer", "internal reporting",
}

var reportingIncentiveTerms = []string{"reward", "compensation", "bounty", "incentive", "award"}

var retaliationRemedyTerms = []string{
	"reinstatement", "back pay", "damages", "attorney fees", "injunctive relief",
}

var nexusTerms = []string{
	"nexus", "connection", "substantial connection", "minimum contacts",
	"effects test", "conduct test", "territorial nexus",
}

var internationalElements = []string{
	"foreign national", "foreign entity", "foreign government",
	"international transaction", "cross-border", "transnational",
}

var geographicRegions = []string{
	"united states", "european union", "asia pacific", "latin america",
	"africa", "middle east", "worldwide", "global",
}

var penaltyAmountPattern = regexp.MustCompile(
	`(?i)\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\b\d{1,3}(?:,\d{3})*\s*dollars?|\bmillion\s+dollars?\b|\bbillion\s+dollars?\b`)

// AntiCorruption quantifies anti-bribery legislation across seven
// categories. Plugged into an Extractor it contributes 72 features to the
// enforcement channel; it also works standalone for evolution analysis.
type AntiCorruption struct {
	patterns     patternTable
	cooccurrence map[string]*regexp.Regexp
	logger       *slog.Logger
}

// NewAntiCorruption creates the extractor with its full pattern vocabulary
// precompiled.
func NewAntiCorruption() *AntiCorruption {
	logger := slog.Default().With("component", "anticorruption")

	cooccurrence := make(map[string]*regexp.Regexp)
	for _, activity := range prohibitedActivities {
		for _, keyword := range activity.keywords {
			// A verb counts when it appears within roughly 50 words of a
			// bribery or corruption stem, in either order.
			expr := fmt.Sprintf(
				`(?is)\b%[1]s\b.{0,300}\b(?:brib|corrupt)\w*|\b(?:brib|corrupt)\w*.{0,300}\b%[1]s\b`,
				keyword)
			cooccurrence[keyword] = regexp.MustCompile(expr)
		}
	}

	return &AntiCorruption{
		patterns:     compilePatterns(anticorruptionPatterns, logger),
		cooccurrence: cooccurrence,
		logger:       logger,
	}
}

// ExtractDomainFeatures computes the 72-feature anti-corruption sequence.
// Count features are normalized per 1000 words so statutes of different
// lengths stay comparable.
func (a *AntiCorruption) ExtractDomainFeatures(text string) ([]float64, error) {
	features := make([]float64, 0, len(a.FeatureNames()))
	features = append(features, a.prohibitionScope(text)...)
	features = append(features, a.corporateLiability(text)...)
	features = append(features, a.penalties(text)...)
	features = append(features, a.complianceRequirements(text)...)
	features = append(features, a.enforcementMechanisms(text)...)
	features = append(features, a.whistleblowerProtection(text)...)
	features = append(features, a.jurisdictionalScope(text)...)
	return features, nil
}

// density normalizes a raw count per 1000 words.
func density(count, wordCount int) float64 {
	return float64(count) / float64(max(1, wordCount)) * 1000
}

func (a *AntiCorruption) prohibitionScope(text string) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	features := make([]float64, 0, 13)

	features = append(features,
		density(a.patterns.count("bribery", text), wordCount),
		density(a.patterns.count("corruption", text), wordCount),
	)

	for _, activity := range prohibitedActivities {
		score := 0
		for _, keyword := range activity.keywords {
			score += len(a.cooccurrence[keyword].FindAllStringIndex(lower, -1))
		}
		features = append(features, density(score, wordCount))
	}

	features = append(features,
		density(a.patterns.count("foreign_official", text), wordCount),
		density(strings.Count(lower, "private")+strings.Count(lower, "commercial"), wordCount),
		density(strings.Count(lower, "political party")+strings.Count(lower, "candidate"), wordCount),
		density(a.patterns.count("facilitation_payment", text), wordCount),
	)

	// Monetary thresholds indicate scope precision. No thresholds is a
	// valid statute, not an error.
	amounts := monetaryAmounts(a.patterns, text)
	maxAmount, minAmount := 0.0, 0.0
	for i, amount := range amounts {
		if i == 0 || amount > maxAmount {
			maxAmount = amount
		}
		if i == 0 || amount < minAmount {
			minAmount = amount
		}
	}
	features = append(features, float64(len(amounts)), maxAmount, minAmount)

	return features
}

func (a *AntiCorruption) corporateLiability(text string) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	features := make([]float64, 0, 13)

	features = append(features, density(a.patterns.count("corporate_entity", text), wordCount))

	for _, standard := range liabilityStandards {
		score := 0
		for _, keyword := range standard.keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		features = append(features, float64(score))
	}

	features = append(features,
		density(a.patterns.count("parent_subsidiary", text), wordCount),
		density(a.patterns.count("successor_liability", text), wordCount),
		density(strings.Count(lower, "joint venture")+strings.Count(lower, "partnership"), wordCount),
		density(strings.Count(lower, "agent")+strings.Count(lower, "representative"), wordCount),
	)

	for _, defense := range affirmativeDefenses {
		if strings.Contains(lower, defense.keyword) {
			features = append(features, 1.0)
		} else {
			features = append(features, 0.0)
		}
	}

	return features
}

func (a *AntiCorruption) penalties(text string) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	features := make([]float64, 0, 12)

	features = append(features,
		density(a.patterns.count("criminal_penalty", text), wordCount),
		density(a.patterns.count("civil_penalty", text), wordCount),
		density(a.patterns.count("disgorgement", text), wordCount),
		density(a.patterns.count("debarment", text), wordCount),
	)

	severity := 0
	for _, term := range penaltySeverityTerms {
		if strings.Contains(lower, term) {
			severity++
		}
	}
	features = append(features, density(severity, wordCount))

	features = append(features,
		float64(len(penaltyAmountPattern.FindAllStringIndex(text, -1))),
		boolFeature(strings.Contains(lower, "million")),
		boolFeature(strings.Contains(lower, "billion")),
	)

	// Prison terms. Days and weeks are too short to be sentences here,
	// so only years and months count.
	var prisonYears []float64
	for _, period := range timePeriods(a.patterns, text) {
		switch period.Unit {
		case "year":
			prisonYears = append(prisonYears, float64(period.Value))
		case "month":
			prisonYears = append(prisonYears, float64(period.Value)/12.0)
		}
	}
	maxTerm, sum := 0.0, 0.0
	for _, y := range prisonYears {
		if y > maxTerm {
			maxTerm = y
		}
		sum += y
	}
	avgTerm := 0.0
	if len(prisonYears) > 0 {
		avgTerm = sum / float64(len(prisonYears))
	}
	features = append(features, float64(len(prisonYears)), maxTerm, avgTerm)

	multipliers := 0
	for _, term := range penaltyMultiplierTerms {
		if strings.Contains(lower, term) {
			multipliers++
		}
	}
	features = append(features, float64(multipliers))

	return features
}

func (a *AntiCorruption) complianceRequirements(text string) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	features := make([]float64, 0, 12)

	for _, name := range []string{
		"compliance_program", "due_diligence", "internal_controls",
		"training", "monitoring", "auditing",
	} {
		features = append(features, density(a.patterns.count(name, text), wordCount))
	}

	components := 0
	for _, component := range programComponents {
		if strings.Contains(lower, component) {
			components++
		}
	}
	features = append(features, float64(components)/float64(len(programComponents)))

	features = append(features,
		boolFeature(strings.Contains(lower, "iso 37001")),
		boolFeature(strings.Contains(lower, "fcpa") && strings.Contains(lower, "guidance")),
		boolFeature(strings.Contains(lower, "bribery act") && strings.Contains(lower, "guidance")),
		boolFeature(strings.Contains(lower, "oecd")),
	)

	thirdParty := 0
	for _, term := range thirdPartyTerms {
		if strings.Contains(lower, term) {
			thirdParty++
		}
	}
	features = append(features, density(thirdParty, wordCount))

	return features
}

func (a *AntiCorruption) enforcementMechanisms(text string) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	features := make([]float64, 0, 8)

	authorities := 0
	for _, authority := range enforcementAuthorities {
		if strings.Contains(lower, authority) {
			authorities++
		}
	}
	features = append(features, float64(authorities))

	for _, name := range []string{"investigation", "prosecution", "cooperation", "disclosure"} {
		features = append(features, density(a.patterns.count(name, text), wordCount))
	}

	incentives := 0
	for _, term := range cooperationIncentives {
		if strings.Contains(lower, term) {
			incentives++
		}
	}
	features = append(features, float64(incentives))

	features = append(features, boolFeature(
		strings.Contains(lower, "statute of limitations") || strings.Contains(lower, "limitation period")))

	international := 0
	for _, term := range internationalCooperationTerms {
		if strings.Contains(lower, term) {
			international++
		}
	}
	features = append(features, float64(international))

	return features
}

func (a *AntiCorruption) whistleblowerProtection(text string) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	features := make([]float64, 0, 8)

	features = append(features,
		density(a.patterns.count("whistleblower", text), wordCount),
		density(a.patterns.count("protection", text), wordCount),
		density(a.patterns.count("anonymity", text), wordCount),
		density(strings.Count(lower, "confidential"), wordCount),
		density(strings.Count(lower, "retaliation")+strings.Count(lower, "reprisal"), wordCount),
	)

	channels := 0
	for _, channel := range reportingChannels {
		if strings.Contains(lower, channel) {
			channels++
		}
	}
	features = append(features, float64(channels))

	incentives := 0
	for _, term := range reportingIncentiveTerms {
		if strings.Contains(lower, term) {
			incentives++
		}
	}
	features = append(features, float64(incentives))

	remedies := 0
	for _, term := range retaliationRemedyTerms {
		if strings.Contains(lower, term) {
			remedies++
		}
	}
	features = append(features, float64(remedies))

	return features
}

func (a *AntiCorruption) jurisdictionalScope(text string) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	features := make([]float64, 0, 6)

	features = append(features,
		density(a.patterns.count("extraterritorial", text), wordCount),
		density(a.patterns.count("foreign_commerce", text), wordCount),
		density(a.patterns.count("interstate_commerce", text), wordCount),
	)

	nexus := 0
	for _, term := range nexusTerms {
		if strings.Contains(lower, term) {
			nexus++
		}
	}
	features = append(features, float64(nexus))

	international := 0
	for _, element := range internationalElements {
		if strings.Contains(lower, element) {
			international++
		}
	}
	features = append(features, float64(international))

	geographic := 0
	for _, region := range geographicRegions {
		if strings.Contains(lower, region) {
			geographic++
		}
	}
	features = append(features, float64(geographic))

	return features
}

func boolFeature(present bool) float64 {
	if present {
		return 1.0
	}
	return 0.0
}

// anticorruptionFeatureNames lists every feature in extraction order.
var anticorruptionFeatureNames = []string{
	// Prohibition scope
	"bribery_density", "corruption_density",
	"giving_bribes_score", "receiving_bribes_score",
	"promising_bribes_score", "facilitating_corruption_score",
	"foreign_officials_mentions", "private_parties_mentions",
	"political_parties_mentions", "facilitation_payments_mentions",
	"monetary_thresholds_count", "max_threshold", "min_threshold",

	// Corporate liability
	"corporate_mentions",
	"strict_liability", "vicarious_liability", "negligence_standard", "knowledge_standard",
	"parent_subsidiary_mentions", "successor_liability_mentions",
	"joint_ventures_mentions", "agents_representatives_mentions",
	"compliance_defense", "due_diligence_defense", "good_faith_defense", "cooperation_defense",

	// Penalties
	"criminal_penalties", "civil_penalties", "disgorgement_mentions", "debarment_mentions",
	"severity_score", "monetary_penalties_count", "million_dollar_penalties", "billion_dollar_penalties",
	"prison_terms_count", "max_prison_term", "avg_prison_term", "penalty_multipliers",

	// Compliance requirements
	"compliance_program_mentions", "due_diligence_mentions", "internal_controls_mentions",
	"training_mentions", "monitoring_mentions", "auditing_mentions",
	"program_completeness", "iso_37001", "fcpa_guidance", "uk_guidance", "oecd_standards",
	"third_party_management",

	// Enforcement mechanisms
	"authority_mentions", "investigation_mentions", "prosecution_mentions",
	"cooperation_mentions", "disclosure_mentions", "cooperation_incentives",
	"statute_limitations", "international_cooperation",

	// Whistleblower protection
	"whistleblower_mentions", "protection_mentions", "anonymity_mentions",
	"confidentiality_mentions", "non_retaliation_mentions", "reporting_channels",
	"reporting_incentives", "legal_remedies",

	// Jurisdictional scope
	"extraterritorial_mentions", "foreign_commerce_mentions", "interstate_commerce_mentions",
	"nexus_requirements", "international_elements", "geographic_scope",
}

// FeatureNames returns one name per feature, in extraction order.
func (a *AntiCorruption) FeatureNames() []string {
	return anticorruptionFeatureNames
}
