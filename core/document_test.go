package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	ctx, err := NewLegalContext("US", CommonLaw, date(1977, 12, 19),
		WithAmendments(date(1988, 8, 23), date(1998, 11, 10)),
		WithCulturalIndices(map[string]float64{"power_distance": 40}),
		WithEconomicIndices(map[string]float64{"gdp_per_capita": 65000}))
	require.NoError(t, err)

	m := NewLegalMemeVector("A bribe shall not be offered.", ctx,
		WithMetadata(map[string]string{"title": "FCPA"}))
	m.Features.Structural = []float64{1, 2}
	m.Features.Enforcement = []float64{0.5}
	require.NoError(t, m.Consolidate())

	data, err := MarshalDocument(m.Document())
	require.NoError(t, err)

	doc, err := UnmarshalDocument(data)
	require.NoError(t, err)

	restored, err := FromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, m.Text, restored.Text)
	assert.Equal(t, m.TextID, restored.TextID)
	assert.Equal(t, m.Vector, restored.Vector)
	assert.Equal(t, m.Context.Jurisdiction, restored.Context.Jurisdiction)
	assert.Equal(t, m.Context.LegalFamily, restored.Context.LegalFamily)
	assert.True(t, m.Context.EnactmentDate.Equal(restored.Context.EnactmentDate))
	require.Len(t, restored.Context.AmendmentDates, 2)
	assert.Equal(t, m.Context.CulturalIndices, restored.Context.CulturalIndices)
	assert.Equal(t, m.Context.EconomicIndices, restored.Context.EconomicIndices)
	assert.Equal(t, "FCPA", restored.Metadata["title"])
}

func TestDocument_NoVector(t *testing.T) {
	m := testMeme(t)
	doc := m.Document()

	assert.Nil(t, doc.Vector)
	assert.Nil(t, doc.FeatureImportance)

	restored, err := FromDocument(doc)
	require.NoError(t, err)
	assert.False(t, restored.Extracted())
}

func TestDocument_FeatureImportancePresent(t *testing.T) {
	m := testMeme(t)
	m.Features.Structural = []float64{3, 4}
	require.NoError(t, m.Consolidate())

	doc := m.Document()
	require.NotNil(t, doc.FeatureImportance)
	assert.InDelta(t, 1.0, doc.FeatureImportance["structural"], 1e-12)
}

func TestFromDocument_BadInput(t *testing.T) {
	doc := &Document{
		TextID: "x",
		Text:   "y",
		Context: ContextDocument{
			Jurisdiction:  "US",
			LegalFamily:   "feudal",
			EnactmentDate: "2000-01-01",
		},
	}
	_, err := FromDocument(doc)
	assert.ErrorIs(t, err, ErrInvalidLegalFamily)

	doc.Context.LegalFamily = "common_law"
	doc.Context.EnactmentDate = "not-a-date"
	_, err = FromDocument(doc)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDate_Layouts(t *testing.T) {
	for _, s := range []string{"1977-12-19T00:00:00Z", "1977-12-19T00:00:00", "1977-12-19"} {
		d, err := parseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, 1977, d.Year())
	}
}
