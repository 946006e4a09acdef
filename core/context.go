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
	"fmt"
	"maps"
	"slices"
	"time"
)

// LegalContext describes the jurisdictional, cultural, and temporal setting
// of a legal text. Index maps are sparse: an absent key means the indicator
// is unknown for the jurisdiction, which is different from a zero value.
//
// A LegalContext is immutable once constructed and owned by exactly one
// LegalMemeVector.
type LegalContext struct {
	Jurisdiction      string
	LegalFamily       LegalFamily
	EnactmentDate     time.Time
	AmendmentDates    []time.Time
	CulturalIndices   map[string]float64
	EconomicIndices   map[string]float64
	CorruptionIndices map[string]float64
}

// ContextOption configures a LegalContext during construction.
type ContextOption func(*LegalContext)

// WithAmendments sets the amendment dates. Dates are copied and sorted
// chronologically; insertion order does not matter.
func WithAmendments(dates ...time.Time) ContextOption {
	return func(c *LegalContext) {
		c.AmendmentDates = slices.Clone(dates)
	}
}

// WithCulturalIndices sets cultural indicators (Hofstede dimensions etc.).
func WithCulturalIndices(indices map[string]float64) ContextOption {
	return func(c *LegalContext) {
		c.CulturalIndices = maps.Clone(indices)
	}
}

// WithEconomicIndices sets economic indicators (GDP per capita, HDI, Gini).
func WithEconomicIndices(indices map[string]float64) ContextOption {
	return func(c *LegalContext) {
		c.EconomicIndices = maps.Clone(indices)
	}
}

// WithCorruptionIndices sets corruption indicators (CPI, WGI).
func WithCorruptionIndices(indices map[string]float64) ContextOption {
	return func(c *LegalContext) {
		c.CorruptionIndices = maps.Clone(indices)
	}
}

// NewLegalContext builds a validated LegalContext.
// Every amendment date must be on or after the enactment date.
func NewLegalContext(jurisdiction string, family LegalFamily, enacted time.Time, opts ...ContextOption) (*LegalContext, error) {
	if jurisdiction == "" {
		return nil, ErrEmptyJurisdiction
	}
	if !family.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLegalFamily, family)
	}

	c := &LegalContext{
		Jurisdiction:  jurisdiction,
		LegalFamily:   family,
		EnactmentDate: enacted,
	}
	for _, opt := range opts {
		opt(c)
	}

	slices.SortFunc(c.AmendmentDates, func(a, b time.Time) int { return a.Compare(b) })
	for _, d := range c.AmendmentDates {
		if d.Before(enacted) {
			return nil, fmt.Errorf("%w: %s < %s",
				ErrAmendmentBeforeEnactment, d.Format(time.RFC3339), enacted.Format(time.RFC3339))
		}
	}

	return c, nil
}

// AgeYears returns the age of the text in years at the given evaluation time.
func (c *LegalContext) AgeYears(now time.Time) float64 {
	return now.Sub(c.EnactmentDate).Hours() / 24 / 365.25
}

// LastAmendment returns the most recent amendment date and true, or the
// zero time and false when the text was never amended.
func (c *LegalContext) LastAmendment() (time.Time, bool) {
	if len(c.AmendmentDates) == 0 {
		return time.Time{}, false
	}
	return c.AmendmentDates[len(c.AmendmentDates)-1], true
}

// AmendmentsWithin counts amendments that happened within the window
// preceding the evaluation time.
func (c *LegalContext) AmendmentsWithin(now time.Time, window time.Duration) int {
	count := 0
	for _, d := range c.AmendmentDates {
		if !d.After(now) && now.Sub(d) <= window {
			count++
		}
	}
	return count
}

// Indicator looks an indicator up across all three index maps, cultural
// first. The boolean reports whether the indicator is known at all.
func (c *LegalContext) Indicator(name string) (float64, bool) {
	if v, ok := c.CulturalIndices[name]; ok {
		return v, true
	}
	if v, ok := c.EconomicIndices[name]; ok {
		return v, true
	}
	if v, ok := c.CorruptionIndices[name]; ok {
		return v, true
	}
	return 0, false
}
