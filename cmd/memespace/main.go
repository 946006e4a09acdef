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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/memespace/core"
	"github.com/poiesic/memespace/embed"
	"github.com/poiesic/memespace/extract"
	"github.com/poiesic/memespace/fitness"
	"github.com/poiesic/memespace/similarity"
	"github.com/poiesic/memespace/storage/badger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "memespace",
		Usage: "Legal memetics engine for statutory feature extraction, similarity, and fitness analysis",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract a legal meme vector from a statutory text",
				ArgsUsage: " ",
				Action:    extractCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Path to the statutory text file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "context",
						Aliases:  []string{"c"},
						Usage:    "Path to the legal context JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "id",
						Usage: "Text ID for the document (defaults to a generated ID)",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write the meme document to this file instead of stdout",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "BadgerDB directory; when set the document is also stored",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "OpenAI-compatible embedding service URL (placeholder embedder when unset)",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
					},
				},
			},
			{
				Name:      "compare",
				Usage:     "Compare two meme documents",
				ArgsUsage: "A.json B.json",
				Action:    compareCommand,
			},
			{
				Name:      "matrix",
				Usage:     "Compute a pairwise similarity matrix over meme documents",
				ArgsUsage: "[doc.json ...]",
				Action:    matrixCommand,
				Flags: append(populationFlags(),
					&cli.StringFlag{
						Name:    "function",
						Aliases: []string{"f"},
						Usage:   "Similarity function (cosine, memetic)",
						Value:   "memetic",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for parallel computation (0 runs sequentially)",
					},
				),
			},
			{
				Name:      "fitness",
				Usage:     "Calculate fitness metrics for one meme against a population",
				ArgsUsage: "[target.json doc.json ...]",
				Action:    fitnessCommand,
				Flags: append(populationFlags(),
					&cli.StringFlag{
						Name:  "id",
						Usage: "Text ID of the target (required with --db; defaults to the first argument otherwise)",
					},
				),
			},
			{
				Name:      "rank",
				Usage:     "Rank a population under a selection pressure",
				ArgsUsage: "[doc.json ...]",
				Action:    rankCommand,
				Flags: append(populationFlags(),
					&cli.StringFlag{
						Name:     "pressure",
						Aliases:  []string{"p"},
						Usage:    "Selection pressure (cultural_convergence, economic_efficiency, institutional_compatibility, enforcement_effectiveness, international_harmonization, democratic_legitimacy)",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "intensity",
						Usage: "Pressure intensity exponent",
						Value: 1.0,
					},
				),
			},
		},
	}
}

func populationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "BadgerDB directory to load the population from (instead of document arguments)",
		},
		&cli.StringFlag{
			Name:    "jurisdiction",
			Aliases: []string{"j"},
			Usage:   "Restrict a --db population to one jurisdiction",
		},
	}
}

func extractCommand(c *cli.Context) error {
	ctx := context.Background()

	text, err := os.ReadFile(c.String("text"))
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	contextData, err := os.ReadFile(c.String("context"))
	if err != nil {
		return fmt.Errorf("failed to read context file: %w", err)
	}
	var contextDoc core.ContextDocument
	if err := json.Unmarshal(contextData, &contextDoc); err != nil {
		return fmt.Errorf("failed to parse context file: %w", err)
	}

	meme, err := core.FromDocument(&core.Document{
		TextID:  c.String("id"),
		Text:    string(text),
		Context: contextDoc,
	})
	if err != nil {
		return fmt.Errorf("invalid legal context: %w", err)
	}

	opts := []extract.Option{
		extract.WithDomainExtractor(extract.NewAntiCorruption()),
	}
	if host := c.String("embedding-host"); host != "" {
		embedder, err := embed.NewOpenAI(&embed.Config{
			Host:  host,
			Model: c.String("embedding-model"),
		})
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}
		opts = append(opts, extract.WithEmbedder(embedder))
	}

	extractor, err := extract.NewExtractor(opts...)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	if err := extractor.Extract(ctx, meme); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	doc := meme.Document()

	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer backend.Close()

		repo := badger.NewMemeRepository(backend)
		defer repo.Close()

		if err := repo.Put(ctx, doc); err != nil {
			return fmt.Errorf("failed to store document: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Stored %s in %s\n", doc.TextID, dbPath)
	}

	return writeJSON(c.String("out"), doc)
}

func compareCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("compare requires exactly two document files")
	}

	memes, err := loadDocumentFiles(c.Args().Slice())
	if err != nil {
		return err
	}
	a, b := memes[0], memes[1]

	cosine, err := similarity.CosineMemes(a, b)
	if err != nil {
		return fmt.Errorf("cosine similarity failed: %w", err)
	}
	distance, err := similarity.MemeticDistance(a, b)
	if err != nil {
		return fmt.Errorf("memetic distance failed: %w", err)
	}
	memetic, err := similarity.MemeticSimilarity(a, b)
	if err != nil {
		return fmt.Errorf("memetic similarity failed: %w", err)
	}

	return writeJSON("", map[string]any{
		"a":                  a.TextID,
		"b":                  b.TextID,
		"cosine_similarity":  cosine,
		"memetic_distance":   distance,
		"memetic_similarity": memetic,
	})
}

func matrixCommand(c *cli.Context) error {
	fn, err := similarity.ParseFunction(c.String("function"))
	if err != nil {
		return err
	}

	memes, err := loadPopulation(c)
	if err != nil {
		return err
	}

	var matrix [][]float64
	if poolSize := c.Int("pool-size"); poolSize > 0 {
		matrix, err = similarity.MatrixParallel(memes, fn, poolSize)
	} else {
		matrix, err = similarity.Matrix(memes, fn)
	}
	if err != nil {
		return fmt.Errorf("matrix computation failed: %w", err)
	}

	ids := make([]string, 0, len(memes))
	for _, m := range memes {
		ids = append(ids, m.TextID)
	}

	return writeJSON("", map[string]any{
		"function": string(fn),
		"text_ids": ids,
		"matrix":   matrix,
	})
}

func fitnessCommand(c *cli.Context) error {
	memes, err := loadPopulation(c)
	if err != nil {
		return err
	}

	target, err := pickTarget(c, memes)
	if err != nil {
		return err
	}

	calculator, err := fitness.NewCalculator()
	if err != nil {
		return err
	}

	metrics, err := calculator.Calculate(target, memes)
	if err != nil {
		return fmt.Errorf("fitness calculation failed: %w", err)
	}

	return writeJSON("", map[string]any{
		"text_id": target.TextID,
		"metrics": metrics,
	})
}

func rankCommand(c *cli.Context) error {
	pressure, err := fitness.ParsePressure(c.String("pressure"))
	if err != nil {
		return err
	}

	memes, err := loadPopulation(c)
	if err != nil {
		return err
	}

	calculator, err := fitness.NewCalculator()
	if err != nil {
		return err
	}

	ranked, err := calculator.EvolutionaryPressure(memes, pressure, c.Float64("intensity"))
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	type entry struct {
		TextID  string  `json:"text_id"`
		Fitness float64 `json:"fitness"`
	}
	out := make([]entry, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, entry{TextID: r.Meme.TextID, Fitness: r.Fitness})
	}

	return writeJSON("", map[string]any{
		"pressure":  string(pressure),
		"intensity": c.Float64("intensity"),
		"ranked":    out,
	})
}

// loadPopulation loads memes either from a BadgerDB store or from document
// files given as arguments.
func loadPopulation(c *cli.Context) ([]*core.LegalMemeVector, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		if c.NArg() == 0 {
			return nil, fmt.Errorf("either --db or document file arguments are required")
		}
		return loadDocumentFiles(c.Args().Slice())
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo := badger.NewMemeRepository(backend)
	defer repo.Close()

	ctx := context.Background()
	var docs []*core.Document
	if jurisdiction := c.String("jurisdiction"); jurisdiction != "" {
		docs, err = repo.ListByJurisdiction(ctx, jurisdiction)
	} else {
		docs, err = repo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	memes := make([]*core.LegalMemeVector, 0, len(docs))
	for _, doc := range docs {
		meme, err := core.FromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("invalid document %s: %w", doc.TextID, err)
		}
		memes = append(memes, meme)
	}
	return memes, nil
}

func loadDocumentFiles(paths []string) ([]*core.LegalMemeVector, error) {
	memes := make([]*core.LegalMemeVector, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		doc, err := core.UnmarshalDocument(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		meme, err := core.FromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("invalid document %s: %w", path, err)
		}
		memes = append(memes, meme)
	}
	return memes, nil
}

// pickTarget selects the fitness target: by --id when given, otherwise the
// first loaded meme.
func pickTarget(c *cli.Context, memes []*core.LegalMemeVector) (*core.LegalMemeVector, error) {
	id := c.String("id")
	if id == "" {
		if c.String("db") != "" {
			return nil, fmt.Errorf("--id is required when loading the population from --db")
		}
		return memes[0], nil
	}
	for _, m := range memes {
		if m.TextID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("no document with text ID %q in the population", id)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
