package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestNewLegalContext(t *testing.T) {
	ctx, err := NewLegalContext("US", CommonLaw, date(1977, 12, 19),
		WithAmendments(date(1998, 11, 10), date(1988, 8, 23)),
		WithCulturalIndices(map[string]float64{"power_distance": 40}),
	)
	require.NoError(t, err)

	// amendments are sorted regardless of insertion order
	assert.Equal(t, []time.Time{date(1988, 8, 23), date(1998, 11, 10)}, ctx.AmendmentDates)
	assert.Equal(t, 40.0, ctx.CulturalIndices["power_distance"])
}

func TestNewLegalContext_Invalid(t *testing.T) {
	_, err := NewLegalContext("", CommonLaw, date(2000, 1, 1))
	assert.ErrorIs(t, err, ErrEmptyJurisdiction)

	_, err = NewLegalContext("US", LegalFamily("socialist"), date(2000, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidLegalFamily)

	_, err = NewLegalContext("US", CommonLaw, date(2000, 1, 1),
		WithAmendments(date(1999, 12, 31)))
	assert.ErrorIs(t, err, ErrAmendmentBeforeEnactment)
}

func TestLegalContext_AgeYears(t *testing.T) {
	ctx, err := NewLegalContext("FR", CivilLaw, date(2010, 1, 1))
	require.NoError(t, err)

	assert.InDelta(t, 10.0, ctx.AgeYears(date(2020, 1, 1)), 0.05)
	assert.InDelta(t, 0.0, ctx.AgeYears(date(2010, 1, 1)), 1e-9)
}

func TestLegalContext_LastAmendment(t *testing.T) {
	ctx, err := NewLegalContext("FR", CivilLaw, date(2010, 1, 1),
		WithAmendments(date(2015, 6, 1), date(2012, 3, 1)))
	require.NoError(t, err)

	last, ok := ctx.LastAmendment()
	require.True(t, ok)
	assert.Equal(t, date(2015, 6, 1), last)

	bare, err := NewLegalContext("FR", CivilLaw, date(2010, 1, 1))
	require.NoError(t, err)
	_, ok = bare.LastAmendment()
	assert.False(t, ok)
}

func TestLegalContext_AmendmentsWithin(t *testing.T) {
	ctx, err := NewLegalContext("DE", CivilLaw, date(2000, 1, 1),
		WithAmendments(date(2019, 6, 1), date(2020, 2, 1), date(2005, 1, 1)))
	require.NoError(t, err)

	now := date(2020, 6, 1)
	assert.Equal(t, 1, ctx.AmendmentsWithin(now, 365*24*time.Hour))
	assert.Equal(t, 2, ctx.AmendmentsWithin(now, 3*365*24*time.Hour))
}

func TestLegalContext_Indicator(t *testing.T) {
	ctx, err := NewLegalContext("AR", CivilLaw, date(2017, 11, 8),
		WithCulturalIndices(map[string]float64{"power_distance": 49}),
		WithEconomicIndices(map[string]float64{"gdp_per_capita": 10500}),
		WithCorruptionIndices(map[string]float64{"cpi_score": 38}),
	)
	require.NoError(t, err)

	v, ok := ctx.Indicator("gdp_per_capita")
	require.True(t, ok)
	assert.Equal(t, 10500.0, v)

	_, ok = ctx.Indicator("hdi")
	assert.False(t, ok, "absent indicator must be unknown, not zero")
}

func TestParseLegalFamily(t *testing.T) {
	for _, f := range LegalFamilies {
		got, err := ParseLegalFamily(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseLegalFamily("napoleonic")
	assert.ErrorIs(t, err, ErrInvalidLegalFamily)
}
