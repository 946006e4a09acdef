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
	"regexp"
	"strings"
)

// legalAbbreviations maps common legal abbreviations to their expansions.
// Ordered so longer abbreviations expand before their prefixes.
var legalAbbreviations = []struct{ abbrev, expansion string }{
	{"u.s.c.", "united states code"},
	{"c.f.r.", "code of federal regulations"},
	{"fed. reg.", "federal register"},
	{"pub. l.", "public law"},
	{"et seq.", "and following"},
	{"et al.", "and others"},
	{"corp.", "corporation"},
	{"inc.", "incorporated"},
	{"ltd.", "limited"},
	{"llc", "limited liability company"},
	{"sec.", "section"},
	{"para.", "paragraph"},
	{"art.", "article"},
	{"ch.", "chapter"},
	{"subd.", "subdivision"},
	{"stat.", "statutes"},
	{"e.g.", "for example"},
	{"i.e.", "that is"},
	{"vs.", "versus"},
	{"v.", "versus"},
}

// encodingFixes replaces typographic characters that interfere with
// pattern matching.
var encodingFixes = []struct{ old, new string }{
	{"–", "-"},
	{"—", "--"},
	{"‘", "'"},
	{"’", "'"},
	{"“", `"`},
	{"”", `"`},
	{"…", "..."},
	{"§", "Section "},
	{"¶", "Paragraph "},
}

var (
	nonASCII       = regexp.MustCompile(`[^\x00-\x7F]+`)
	multiSpace     = regexp.MustCompile(`\s+`)
	citationForms  = []*regexp.Regexp{
		regexp.MustCompile(`\d+\s+U\.S\.C\.?\s*§?\s*\d+(?:\([^)]+\))?`),
		regexp.MustCompile(`\d+\s+C\.F\.R\.?\s*§?\s*\d+(?:\.\d+)*`),
		regexp.MustCompile(`\d+\s+Fed\.?\s+Reg\.?\s+\d+`),
		regexp.MustCompile(`\d+\s+Stat\.?\s+\d+`),
		regexp.MustCompile(`Pub\.?\s+L\.?\s+No\.?\s+\d+-\d+`),
	}
	definitionForms = []*regexp.Regexp{
		regexp.MustCompile(`(?i)"([^"]+)"\s+means\s+([^.]+\.)`),
		regexp.MustCompile(`(?i)the\s+term\s+"([^"]+)"\s+(?:means|includes)\s+([^.]+\.)`),
		regexp.MustCompile(`(?i)"([^"]+)"\s+(?:shall\s+)?(?:mean|include)s?\s+([^.]+\.)`),
	}
	crossRefForms = []*regexp.Regexp{
		regexp.MustCompile(`(?i)see\s+section\s*\d+(?:\.\d+)*`),
		regexp.MustCompile(`(?i)pursuant\s+to\s+section\s*\d+(?:\.\d+)*`),
		regexp.MustCompile(`(?i)under\s+section\s*\d+(?:\.\d+)*`),
		regexp.MustCompile(`(?i)in\s+accordance\s+with\s+section\s*\d+(?:\.\d+)*`),
		regexp.MustCompile(`(?i)see\s+also\s+section\s*\d+(?:\.\d+)*`),
	}
)

// TextProcessor cleans and normalizes legal text ahead of extraction.
type TextProcessor struct {
	removeCitations bool
}

// ProcessorOption configures a TextProcessor.
type ProcessorOption func(*TextProcessor)

// WithCitationRemoval strips statutory citations during cleaning.
func WithCitationRemoval() ProcessorOption {
	return func(p *TextProcessor) {
		p.removeCitations = true
	}
}

// NewTextProcessor creates a text processor.
func NewTextProcessor(opts ...ProcessorOption) *TextProcessor {
	p := &TextProcessor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Clean normalizes encoding quirks, expands abbreviations, optionally
// strips citations, and collapses whitespace.
func (p *TextProcessor) Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := text
	for _, fix := range encodingFixes {
		cleaned = strings.ReplaceAll(cleaned, fix.old, fix.new)
	}
	cleaned = nonASCII.ReplaceAllString(cleaned, " ")

	// Citations go first: expansion would rewrite "U.S.C." out of them.
	if p.removeCitations {
		for _, re := range citationForms {
			cleaned = re.ReplaceAllString(cleaned, "")
		}
	}
	cleaned = p.expandAbbreviations(cleaned)

	return strings.TrimSpace(multiSpace.ReplaceAllString(cleaned, " "))
}

func (p *TextProcessor) expandAbbreviations(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		matched := false
		for _, a := range legalAbbreviations {
			if strings.HasPrefix(lower[i:], a.abbrev) && atWordStart(lower, i) {
				b.WriteString(a.expansion)
				i += len(a.abbrev)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}

func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	prev := s[i-1]
	return !(prev >= 'a' && prev <= 'z') && !(prev >= '0' && prev <= '9')
}

// ExtractDefinitions pulls "X means Y" style term definitions from text.
func (p *TextProcessor) ExtractDefinitions(text string) map[string]string {
	definitions := make(map[string]string)
	for _, re := range definitionForms {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			term := strings.ToLower(strings.TrimSpace(m[1]))
			definitions[term] = strings.TrimSpace(m[2])
		}
	}
	return definitions
}

// ExtractCrossReferences lists internal section references.
func (p *TextProcessor) ExtractCrossReferences(text string) []string {
	var refs []string
	for _, re := range crossRefForms {
		refs = append(refs, re.FindAllString(text, -1)...)
	}
	return refs
}

// PreprocessForSimilarity lowercases, standardizes prohibition phrasing,
// and strips punctuation so near-duplicate texts converge.
func (p *TextProcessor) PreprocessForSimilarity(text string) string {
	processed := strings.ToLower(p.Clean(text))

	synonyms := []struct{ from, to string }{
		{"shall not", "prohibited"},
		{"is prohibited", "prohibited"},
		{"is forbidden", "prohibited"},
		{"must not", "prohibited"},
		{"may not", "prohibited"},
		{"shall", "must"},
	}
	for _, s := range synonyms {
		processed = strings.ReplaceAll(processed, s.from, s.to)
	}

	var b strings.Builder
	b.Grow(len(processed))
	for _, r := range processed {
		if r == ' ' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(multiSpace.ReplaceAllString(b.String(), " "))
}
