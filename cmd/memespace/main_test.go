package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/memespace/core"
)

const usContext = `{
	"jurisdiction": "US",
	"legal_family": "common_law",
	"enactment_date": "1977-12-19",
	"cultural_indices": {"power_distance": 40},
	"economic_indices": {"gdp_per_capita": 65000}
}`

const ukContext = `{
	"jurisdiction": "UK",
	"legal_family": "common_law",
	"enactment_date": "2010-04-08",
	"cultural_indices": {"power_distance": 35},
	"economic_indices": {"gdp_per_capita": 47000}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runApp(t *testing.T, args ...string) {
	t.Helper()
	require.NoError(t, newApp().Run(append([]string{"memespace"}, args...)))
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it wrote.
func captureStdout(t *testing.T, fn func()) []byte {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	fn()

	os.Stdout = old
	require.NoError(t, w.Close())
	return <-done
}

// extractDocument runs the extract command and returns the output path.
func extractDocument(t *testing.T, dir, id, text, contextJSON string, extraArgs ...string) string {
	t.Helper()

	textPath := writeFile(t, dir, id+".txt", text)
	contextPath := writeFile(t, dir, id+"-context.json", contextJSON)
	outPath := filepath.Join(dir, id+".json")

	args := []string{"extract",
		"--text", textPath,
		"--context", contextPath,
		"--id", id,
		"--out", outPath,
	}
	runApp(t, append(args, extraArgs...)...)
	return outPath
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	outPath := extractDocument(t, dir, "fcpa",
		"No person shall offer a bribe to a foreign official. Violations are punishable by a fine not exceeding $2,000,000.",
		usContext)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	doc, err := core.UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, "fcpa", doc.TextID)
	assert.NotEmpty(t, doc.Vector)
	assert.Equal(t, "US", doc.Context.Jurisdiction)
	assert.NotNil(t, doc.FeatureImportance)
}

func TestExtractCommandGeneratedID(t *testing.T) {
	dir := t.TempDir()

	textPath := writeFile(t, dir, "statute.txt", "Bribery of an official is prohibited.")
	contextPath := writeFile(t, dir, "context.json", usContext)
	outPath := filepath.Join(dir, "out.json")

	runApp(t, "extract", "--text", textPath, "--context", contextPath, "--out", outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	doc, err := core.UnmarshalDocument(data)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.TextID)
}

func TestExtractCommandBadContext(t *testing.T) {
	dir := t.TempDir()
	textPath := writeFile(t, dir, "statute.txt", "Bribery is prohibited.")
	contextPath := writeFile(t, dir, "context.json", `{"jurisdiction": "US", "legal_family": "feudal", "enactment_date": "2000-01-01"}`)

	err := newApp().Run([]string{"memespace", "extract", "--text", textPath, "--context", contextPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid legal context")
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	a := extractDocument(t, dir, "fcpa",
		"No person shall offer a bribe to a foreign official.", usContext)
	b := extractDocument(t, dir, "ukba",
		"A person is guilty of an offence if the person offers a bribe.", ukContext)

	out := captureStdout(t, func() {
		runApp(t, "compare", a, b)
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal(out, &result))

	assert.Equal(t, "fcpa", result["a"])
	assert.Equal(t, "ukba", result["b"])

	cosine := result["cosine_similarity"].(float64)
	assert.GreaterOrEqual(t, cosine, 0.0)
	assert.LessOrEqual(t, cosine, 1.0)

	memetic := result["memetic_similarity"].(float64)
	assert.Greater(t, memetic, 0.0)
	assert.LessOrEqual(t, memetic, 1.0)
}

func TestCompareCommandArgCount(t *testing.T) {
	err := newApp().Run([]string{"memespace", "compare", "only-one.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly two")
}

func TestMatrixCommand(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		extractDocument(t, dir, "a", "Bribery of an official is prohibited.", usContext),
		extractDocument(t, dir, "b", "Corruption in public office is an offence.", ukContext),
		extractDocument(t, dir, "c", "Facilitation payments are not permitted.", usContext),
	}

	out := captureStdout(t, func() {
		runApp(t, append([]string{"matrix", "--function", "cosine"}, paths...)...)
	})

	var result struct {
		Function string      `json:"function"`
		TextIDs  []string    `json:"text_ids"`
		Matrix   [][]float64 `json:"matrix"`
	}
	require.NoError(t, json.Unmarshal(out, &result))

	assert.Equal(t, "cosine", result.Function)
	assert.Equal(t, []string{"a", "b", "c"}, result.TextIDs)
	require.Len(t, result.Matrix, 3)
	for i, row := range result.Matrix {
		require.Len(t, row, 3)
		assert.InDelta(t, 1.0, row[i], 1e-12)
	}
}

func TestFitnessCommandFromFiles(t *testing.T) {
	dir := t.TempDir()
	target := extractDocument(t, dir, "fcpa",
		"Bribery of a foreign official is prohibited and punishable by imprisonment for not more than 5 years.",
		usContext)
	other := extractDocument(t, dir, "ukba",
		"A person who bribes another is guilty of an offence.", ukContext)

	out := captureStdout(t, func() {
		runApp(t, "fitness", target, other)
	})

	var result struct {
		TextID  string `json:"text_id"`
		Metrics struct {
			Overall float64 `json:"overall_fitness"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(out, &result))

	assert.Equal(t, "fcpa", result.TextID)
	assert.GreaterOrEqual(t, result.Metrics.Overall, 0.0)
	assert.LessOrEqual(t, result.Metrics.Overall, 1.0)
}

func TestFitnessCommandFromStore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "db")

	extractDocument(t, dir, "fcpa",
		"Bribery of a foreign official is prohibited.", usContext, "--db", dbPath)
	extractDocument(t, dir, "ukba",
		"A person who bribes another is guilty of an offence.", ukContext, "--db", dbPath)

	out := captureStdout(t, func() {
		runApp(t, "fitness", "--db", dbPath, "--id", "ukba")
	})

	var result struct {
		TextID string `json:"text_id"`
	}
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Equal(t, "ukba", result.TextID)
}

func TestFitnessCommandStoreRequiresID(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "db")
	extractDocument(t, dir, "fcpa", "Bribery is prohibited.", usContext, "--db", dbPath)

	err := newApp().Run([]string{"memespace", "fitness", "--db", dbPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--id is required")
}

func TestRankCommand(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		extractDocument(t, dir, "strong",
			"The commission shall investigate and prosecute bribery. Penalties include imprisonment, fines, and debarment. Compliance programs and audits are mandatory.",
			usContext),
		extractDocument(t, dir, "weak", "Gifts are discouraged.", ukContext),
	}

	out := captureStdout(t, func() {
		runApp(t, append([]string{"rank", "--pressure", "enforcement_effectiveness"}, paths...)...)
	})

	var result struct {
		Pressure string `json:"pressure"`
		Ranked   []struct {
			TextID  string  `json:"text_id"`
			Fitness float64 `json:"fitness"`
		} `json:"ranked"`
	}
	require.NoError(t, json.Unmarshal(out, &result))

	assert.Equal(t, "enforcement_effectiveness", result.Pressure)
	require.Len(t, result.Ranked, 2)
	assert.Equal(t, "strong", result.Ranked[0].TextID)
	assert.GreaterOrEqual(t, result.Ranked[0].Fitness, result.Ranked[1].Fitness)
}

func TestRankCommandUnknownPressure(t *testing.T) {
	err := newApp().Run([]string{"memespace", "rank", "--pressure", "gravity", "doc.json"})
	require.Error(t, err)
}

func TestSetupLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "Info", "WARN", "error"} {
		t.Run(level, func(t *testing.T) {
			runApp(t, "--log-level", level, "help")
		})
	}
}

func TestSetupLoggerInvalidLevel(t *testing.T) {
	err := newApp().Run([]string{"memespace", "--log-level", "loud", "help"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
