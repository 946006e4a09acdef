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
	"log/slog"
	"regexp"
)

// defaultPatterns is the shared pattern vocabulary for legal documents.
// Every extractor compiles it once at construction.
var defaultPatterns = map[string]string{
	"section_reference":    `§\s*\d+(?:\.\d+)*|\bsection\s+\d+(?:\.\d+)*`,
	"article_reference":    `\barticle\s+\d+(?:\.\d+)*`,
	"paragraph_reference":  `\bparagraph\s+\d+(?:\.\d+)*|\(\d+\)`,
	"subsection_reference": `\bsubsection\s+\d+(?:\.\d+)*`,
	"monetary_amount":      `\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\b\d{1,3}(?:,\d{3})*\s*dollars?`,
	"percentage":           `\d+(?:\.\d+)?%`,
	"time_period":          `\b\d+\s*(?:days?|weeks?|months?|years?)`,
	"legal_citation":       `\b\d+\s+[A-Z][a-z]+\s+\d+`,
	"criminal_penalty":     `\bimprisonment\b|\bfine\b|\bpenalty\b|\bsanctions?\b`,
	"compliance_terms":     `\bcompliance\b|\bdue\s+diligence\b|\binternal\s+controls?\b`,
}

// patternTable holds precompiled case-insensitive patterns. Built once,
// read-only afterwards.
type patternTable map[string]*regexp.Regexp

// compilePatterns compiles the union of the defaults and the custom
// patterns, custom definitions winning on name collision. Malformed
// patterns are logged and skipped; they degrade coverage, not correctness.
func compilePatterns(custom map[string]string, logger *slog.Logger) patternTable {
	merged := make(map[string]string, len(defaultPatterns)+len(custom))
	for name, expr := range defaultPatterns {
		merged[name] = expr
	}
	for name, expr := range custom {
		merged[name] = expr
	}

	table := make(patternTable, len(merged))
	for name, expr := range merged {
		re, err := regexp.Compile(`(?i)` + expr)
		if err != nil {
			logger.Warn("failed to compile pattern, skipping", "pattern", name, "err", err)
			continue
		}
		table[name] = re
	}
	return table
}

// matches returns all matches for a named pattern, nil for unknown names.
func (t patternTable) matches(name, text string) []string {
	re, ok := t[name]
	if !ok {
		return nil
	}
	return re.FindAllString(text, -1)
}

// count returns the number of matches for a named pattern.
func (t patternTable) count(name, text string) int {
	re, ok := t[name]
	if !ok {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}
