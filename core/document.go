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


package core

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"
)

// Document is the JSON-compatible exchange form of a LegalMemeVector.
// It is the sole persisted and exchanged artifact of the engine; feature
// channels are not serialized because the vector is re-derivable by
// re-running extraction.
type Document struct {
	TextID            string             `json:"text_id"`
	Text              string             `json:"text"`
	Context           ContextDocument    `json:"context"`
	Vector            []float64          `json:"vector"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
	Metadata          map[string]string  `json:"metadata"`
}

// ContextDocument is the serialized form of a LegalContext.
// Dates are ISO-8601.
type ContextDocument struct {
	Jurisdiction      string             `json:"jurisdiction"`
	LegalFamily       string             `json:"legal_family"`
	EnactmentDate     string             `json:"enactment_date"`
	AmendmentDates    []string           `json:"amendment_dates"`
	CulturalIndices   map[string]float64 `json:"cultural_indices,omitempty"`
	EconomicIndices   map[string]float64 `json:"economic_indices,omitempty"`
	CorruptionIndices map[string]float64 `json:"corruption_indices,omitempty"`
}

// Document converts the meme into its exchange form. Vector and
// FeatureImportance are null when extraction has not run.
func (m *LegalMemeVector) Document() *Document {
	doc := &Document{
		TextID: m.TextID,
		Text:   m.Text,
		Context: ContextDocument{
			Jurisdiction:      m.Context.Jurisdiction,
			LegalFamily:       string(m.Context.LegalFamily),
			EnactmentDate:     m.Context.EnactmentDate.Format(time.RFC3339),
			AmendmentDates:    formatDates(m.Context.AmendmentDates),
			CulturalIndices:   maps.Clone(m.Context.CulturalIndices),
			EconomicIndices:   maps.Clone(m.Context.EconomicIndices),
			CorruptionIndices: maps.Clone(m.Context.CorruptionIndices),
		},
		Metadata: m.Metadata,
	}
	if m.Extracted() {
		doc.Vector = slices.Clone(m.Vector)
		// Extracted() guarantees this cannot fail.
		doc.FeatureImportance, _ = m.FeatureImportance()
	}
	return doc
}

// FromDocument rebuilds a LegalMemeVector from its exchange form. The
// consolidated vector is restored verbatim; individual feature channels are
// not, so re-extraction is required before the channels can be inspected.
func FromDocument(doc *Document) (*LegalMemeVector, error) {
	family, err := ParseLegalFamily(doc.Context.LegalFamily)
	if err != nil {
		return nil, err
	}

	enacted, err := parseDate(doc.Context.EnactmentDate)
	if err != nil {
		return nil, err
	}

	amendments := make([]time.Time, 0, len(doc.Context.AmendmentDates))
	for _, s := range doc.Context.AmendmentDates {
		d, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		amendments = append(amendments, d)
	}

	context, err := NewLegalContext(doc.Context.Jurisdiction, family, enacted,
		WithAmendments(amendments...),
		WithCulturalIndices(doc.Context.CulturalIndices),
		WithEconomicIndices(doc.Context.EconomicIndices),
		WithCorruptionIndices(doc.Context.CorruptionIndices))
	if err != nil {
		return nil, err
	}

	meme := NewLegalMemeVector(doc.Text, context, WithTextID(doc.TextID), WithMetadata(doc.Metadata))
	if len(doc.Vector) > 0 {
		if err := ValidateVector(doc.Vector); err != nil {
			return nil, err
		}
		meme.Vector = slices.Clone(doc.Vector)
	}
	return meme, nil
}

// MarshalDocument renders the document as JSON.
func MarshalDocument(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}

// UnmarshalDocument parses a JSON document.
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(time.RFC3339))
	}
	return out
}

// parseDate accepts RFC 3339 timestamps as well as the zone-less and
// date-only ISO-8601 forms other tooling emits.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
