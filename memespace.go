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


// Package memespace ties the engine together: a Workspace owns a document
// store, an extractor, and a fitness calculator, and exposes the common
// analyze-store-compare workflow as single calls. Hosts that need finer
// control use the subpackages directly.
package memespace

import (
	"context"
	"log/slog"

	"github.com/poiesic/memespace/core"
	"github.com/poiesic/memespace/embed"
	"github.com/poiesic/memespace/extract"
	"github.com/poiesic/memespace/fitness"
	"github.com/poiesic/memespace/similarity"
	"github.com/poiesic/memespace/storage"
	"github.com/poiesic/memespace/storage/badger"
)

// Workspace is the top-level handle over one BadgerDB-backed corpus of
// legal memes.
type Workspace struct {
	backend    *badger.Backend
	repo       storage.MemeRepository
	extractor  *extract.Extractor
	calculator *fitness.Calculator
	logger     *slog.Logger
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*workspaceOptions)

type workspaceOptions struct {
	inMemory       bool
	embedder       embed.Embedder
	extractOptions []extract.Option
	fitnessOptions []fitness.Option
}

// WithInMemoryStore keeps the corpus entirely in memory. Intended for tests
// and throwaway analysis sessions.
func WithInMemoryStore() WorkspaceOption {
	return func(o *workspaceOptions) {
		o.inMemory = true
	}
}

// WithEmbedder replaces the deterministic placeholder embedder.
func WithEmbedder(e embed.Embedder) WorkspaceOption {
	return func(o *workspaceOptions) {
		o.embedder = e
	}
}

// WithExtractOptions passes extra options through to the extractor.
func WithExtractOptions(opts ...extract.Option) WorkspaceOption {
	return func(o *workspaceOptions) {
		o.extractOptions = append(o.extractOptions, opts...)
	}
}

// WithFitnessOptions passes extra options through to the fitness calculator.
func WithFitnessOptions(opts ...fitness.Option) WorkspaceOption {
	return func(o *workspaceOptions) {
		o.fitnessOptions = append(o.fitnessOptions, opts...)
	}
}

// NewWorkspace opens (or creates) a workspace at the given path. The
// anticorruption domain extractor is always attached; the semantic channel
// uses the deterministic placeholder unless WithEmbedder overrides it.
func NewWorkspace(filePath string, opts ...WorkspaceOption) (*Workspace, error) {
	options := &workspaceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	extractOptions := []extract.Option{
		extract.WithDomainExtractor(extract.NewAntiCorruption()),
	}
	if options.embedder != nil {
		extractOptions = append(extractOptions, extract.WithEmbedder(options.embedder))
	}
	extractOptions = append(extractOptions, options.extractOptions...)

	extractor, err := extract.NewExtractor(extractOptions...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	calculator, err := fitness.NewCalculator(options.fitnessOptions...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Workspace{
		backend:    backend,
		repo:       badger.NewMemeRepository(backend),
		extractor:  extractor,
		calculator: calculator,
		logger:     slog.Default().With("component", "workspace"),
	}, nil
}

// Close releases the workspace's storage resources.
func (w *Workspace) Close() error {
	if err := w.repo.Close(); err != nil {
		w.logger.Error("error closing repository", "err", err)
		return err
	}
	if err := w.backend.Close(); err != nil {
		w.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Repository exposes the underlying document store.
func (w *Workspace) Repository() storage.MemeRepository {
	return w.repo
}

// Analyze extracts a legal text into a meme, stores its document form, and
// returns the meme.
func (w *Workspace) Analyze(ctx context.Context, text string, legal *core.LegalContext, opts ...core.MemeOption) (*core.LegalMemeVector, error) {
	meme := core.NewLegalMemeVector(text, legal, opts...)
	if err := w.extractor.Extract(ctx, meme); err != nil {
		return nil, err
	}
	if err := w.repo.Put(ctx, meme.Document()); err != nil {
		return nil, err
	}
	w.logger.Info("analyzed legal text",
		"text_id", meme.TextID, "jurisdiction", legal.Jurisdiction, "dim", meme.Dim())
	return meme, nil
}

// Meme loads one stored meme by text ID.
func (w *Workspace) Meme(ctx context.Context, id string) (*core.LegalMemeVector, error) {
	doc, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return core.FromDocument(doc)
}

// Population loads all stored memes, optionally restricted to one
// jurisdiction.
func (w *Workspace) Population(ctx context.Context, jurisdiction string) ([]*core.LegalMemeVector, error) {
	var docs []*core.Document
	var err error
	if jurisdiction == "" {
		docs, err = w.repo.List(ctx)
	} else {
		docs, err = w.repo.ListByJurisdiction(ctx, jurisdiction)
	}
	if err != nil {
		return nil, err
	}

	memes := make([]*core.LegalMemeVector, 0, len(docs))
	for _, doc := range docs {
		meme, err := core.FromDocument(doc)
		if err != nil {
			return nil, err
		}
		memes = append(memes, meme)
	}
	return memes, nil
}

// SimilarityMatrix computes the pairwise similarity matrix over the whole
// stored population. A poolSize above zero parallelizes row computation.
func (w *Workspace) SimilarityMatrix(ctx context.Context, fn similarity.Function, poolSize int) ([]string, [][]float64, error) {
	memes, err := w.Population(ctx, "")
	if err != nil {
		return nil, nil, err
	}

	var matrix [][]float64
	if poolSize > 0 {
		matrix, err = similarity.MatrixParallel(memes, fn, poolSize)
	} else {
		matrix, err = similarity.Matrix(memes, fn)
	}
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(memes))
	for _, m := range memes {
		ids = append(ids, m.TextID)
	}
	return ids, matrix, nil
}

// Fitness calculates the fitness metrics of one stored meme against the
// rest of the stored population.
func (w *Workspace) Fitness(ctx context.Context, id string) (fitness.Metrics, error) {
	target, err := w.Meme(ctx, id)
	if err != nil {
		return fitness.Metrics{}, err
	}
	population, err := w.Population(ctx, "")
	if err != nil {
		return fitness.Metrics{}, err
	}
	return w.calculator.Calculate(target, population)
}

// Rank scores the stored population under one selection pressure.
func (w *Workspace) Rank(ctx context.Context, pressure fitness.Pressure, intensity float64) ([]fitness.Ranked, error) {
	population, err := w.Population(ctx, "")
	if err != nil {
		return nil, err
	}
	return w.calculator.EvolutionaryPressure(population, pressure, intensity)
}
