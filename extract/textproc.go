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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// TimePeriod is a duration parsed out of free legal text, e.g. "5 years".
type TimePeriod struct {
	Value int
	Unit  string // day, week, month, year (singular)
}

// Years converts the period to fractional years. Days and weeks round
// through the 365.25-day year.
func (p TimePeriod) Years() float64 {
	switch p.Unit {
	case "year":
		return float64(p.Value)
	case "month":
		return float64(p.Value) / 12.0
	case "week":
		return float64(p.Value) * 7 / 365.25
	case "day":
		return float64(p.Value) / 365.25
	}
	return 0
}

var nonAmountChars = regexp.MustCompile(`[^\d.]`)

// monetaryAmounts parses every monetary figure the pattern table finds.
// Unparseable matches are dropped; an empty result is not an error.
func monetaryAmounts(patterns patternTable, text string) []float64 {
	var amounts []float64
	for _, match := range patterns.matches("monetary_amount", text) {
		clean := nonAmountChars.ReplaceAllString(match, "")
		amount, err := strconv.ParseFloat(strings.Trim(clean, "."), 64)
		if err != nil {
			continue
		}
		amounts = append(amounts, amount)
	}
	return amounts
}

var (
	periodValue = regexp.MustCompile(`\d+`)
	periodUnit  = regexp.MustCompile(`(?i)(days?|weeks?|months?|years?)`)
)

// timePeriods parses every duration the pattern table finds.
func timePeriods(patterns patternTable, text string) []TimePeriod {
	var periods []TimePeriod
	for _, match := range patterns.matches("time_period", text) {
		value := periodValue.FindString(match)
		unit := periodUnit.FindString(match)
		if value == "" || unit == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		periods = append(periods, TimePeriod{
			Value: n,
			Unit:  strings.TrimSuffix(strings.ToLower(unit), "s"),
		})
	}
	return periods
}

// Stop words filtered out of token streams before keyword checks.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation,
// and removes stop words.
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// legalJargon marks the formality vocabulary used by the complexity and
// readability metrics.
var legalJargon = []string{
	"whereas", "hereby", "herein", "thereof", "pursuant", "notwithstanding",
	"aforementioned", "heretofore", "hereunder", "therein", "thereto",
}

// ComplexityScore rates drafting complexity in [0,1] from sentence length,
// nesting, jargon density, and cross-reference density.
func (x *Extractor) ComplexityScore(text string) float64 {
	words := strings.Fields(text)
	wordCount := max(1, len(words))
	sentenceCount := max(1, strings.Count(text, ".")+1)
	lower := strings.ToLower(text)

	avgSentenceLength := float64(len(words)) / float64(sentenceCount)
	nesting := float64(strings.Count(text, "(")+strings.Count(text, "[")) / float64(wordCount) * 100

	jargonCount := 0
	for _, term := range legalJargon {
		jargonCount += strings.Count(lower, term)
	}
	jargonDensity := float64(jargonCount) / float64(wordCount) * 100

	refCount := x.patterns.count("section_reference", text) +
		x.patterns.count("article_reference", text) +
		strings.Count(lower, "see also")
	refDensity := float64(refCount) / float64(wordCount) * 100

	factors := []float64{
		clamp01(avgSentenceLength / 30.0),
		clamp01(nesting / 10.0),
		clamp01(jargonDensity / 5.0),
		clamp01(refDensity / 5.0),
	}

	total := 0.0
	for _, f := range factors {
		total += f
	}
	return total / float64(len(factors))
}

// Readability holds approximate readability metrics for a legal text.
type Readability struct {
	FleschReadingEase   float64
	FleschKincaidGrade  float64
	AvgWordsPerSentence float64
	AvgSyllablesPerWord float64
	ComplexWordRatio    float64
	JargonDensity       float64
	WordCount           int
	SentenceCount       int
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)
var vowelRuns = regexp.MustCompile(`[aeiouy]+`)

// ReadabilityMetrics computes Flesch-style readability measures adapted for
// legal prose. Returns the zero value when the text has no sentences.
func ReadabilityMetrics(text string) Readability {
	words := strings.Fields(text)
	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) == 0 {
		return Readability{}
	}

	wordCount := len(words)
	avgWords := float64(wordCount) / float64(len(sentences))

	syllables := 0
	for _, word := range words {
		w := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		syllables += max(1, len(vowelRuns.FindAllString(w, -1)))
	}
	avgSyllables := float64(syllables) / float64(max(1, wordCount))

	flesch := 206.835 - 1.015*avgWords - 84.6*avgSyllables
	fkGrade := 0.39*avgWords + 11.8*avgSyllables - 15.59

	complexWords := 0
	for _, word := range words {
		if len(word) > 6 {
			complexWords++
		}
	}

	jargonCount := 0
	for _, word := range words {
		w := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		for _, j := range legalJargon {
			if w == j {
				jargonCount++
				break
			}
		}
	}

	return Readability{
		FleschReadingEase:   math.Min(100, math.Max(0, flesch)),
		FleschKincaidGrade:  math.Max(0, fkGrade),
		AvgWordsPerSentence: avgWords,
		AvgSyllablesPerWord: avgSyllables,
		ComplexWordRatio:    float64(complexWords) / float64(max(1, wordCount)),
		JargonDensity:       float64(jargonCount) / float64(max(1, wordCount)) * 100,
		WordCount:           wordCount,
		SentenceCount:       len(sentences),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
