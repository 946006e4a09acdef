package memespace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/memespace/core"
	"github.com/poiesic/memespace/fitness"
	"github.com/poiesic/memespace/similarity"
	"github.com/poiesic/memespace/storage"
)

func testWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w, err := NewWorkspace("", WithInMemoryStore())
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w
}

func legalContext(t *testing.T, jurisdiction string, year int) *core.LegalContext {
	t.Helper()
	ctx, err := core.NewLegalContext(jurisdiction, core.CommonLaw,
		time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return ctx
}

func TestWorkspaceAnalyzeAndLoad(t *testing.T) {
	w := testWorkspace(t)
	ctx := context.Background()

	meme, err := w.Analyze(ctx,
		"No person shall offer a bribe to a foreign official.",
		legalContext(t, "US", 1977),
		core.WithTextID("fcpa"))
	require.NoError(t, err)
	assert.True(t, meme.Extracted())

	loaded, err := w.Meme(ctx, "fcpa")
	require.NoError(t, err)
	assert.Equal(t, meme.TextID, loaded.TextID)
	assert.Equal(t, meme.Vector, loaded.Vector)
}

func TestWorkspaceMemeMissing(t *testing.T) {
	w := testWorkspace(t)

	_, err := w.Meme(context.Background(), "absent")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWorkspacePopulation(t *testing.T) {
	w := testWorkspace(t)
	ctx := context.Background()

	_, err := w.Analyze(ctx, "Bribery is prohibited.", legalContext(t, "US", 1977), core.WithTextID("a"))
	require.NoError(t, err)
	_, err = w.Analyze(ctx, "Corruption is an offence.", legalContext(t, "UK", 2010), core.WithTextID("b"))
	require.NoError(t, err)

	all, err := w.Population(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	uk, err := w.Population(ctx, "UK")
	require.NoError(t, err)
	require.Len(t, uk, 1)
	assert.Equal(t, "b", uk[0].TextID)
}

func TestWorkspaceSimilarityMatrix(t *testing.T) {
	w := testWorkspace(t)
	ctx := context.Background()

	texts := map[string]string{
		"a": "Bribery of an official is prohibited.",
		"b": "Facilitation payments are not permitted.",
		"c": "Corruption in public office is an offence.",
	}
	year := 2000
	for id, text := range texts {
		_, err := w.Analyze(ctx, text, legalContext(t, "US", year), core.WithTextID(id))
		require.NoError(t, err)
		year++
	}

	ids, matrix, err := w.SimilarityMatrix(ctx, similarity.FunctionCosine, 0)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	require.Len(t, matrix, 3)
	for i := range matrix {
		assert.InDelta(t, 1.0, matrix[i][i], 1e-12)
	}

	_, parallel, err := w.SimilarityMatrix(ctx, similarity.FunctionCosine, 2)
	require.NoError(t, err)
	assert.Equal(t, matrix, parallel)
}

func TestWorkspaceFitnessAndRank(t *testing.T) {
	w := testWorkspace(t)
	ctx := context.Background()

	_, err := w.Analyze(ctx,
		"The commission shall investigate and prosecute bribery. Penalties include imprisonment and fines.",
		legalContext(t, "US", 1977), core.WithTextID("strong"))
	require.NoError(t, err)
	_, err = w.Analyze(ctx, "Gifts are discouraged.", legalContext(t, "UK", 2010), core.WithTextID("weak"))
	require.NoError(t, err)

	metrics, err := w.Fitness(ctx, "strong")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, metrics.Overall, 0.0)
	assert.LessOrEqual(t, metrics.Overall, 1.0)

	ranked, err := w.Rank(ctx, fitness.EnforcementEffectiveness, 1.0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.GreaterOrEqual(t, ranked[0].Fitness, ranked[1].Fitness)
}
