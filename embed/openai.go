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


package embed

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAI implements Embedder against any OpenAI-compatible embedding API.
// It is the opt-in replacement for the Deterministic placeholder; the core
// engine never constructs one on its own.
type OpenAI struct {
	embedder embeddings.Embedder
	dim      int
	logger   *slog.Logger
}

var _ Embedder = (*OpenAI)(nil)

// NewOpenAI creates an embedder backed by an OpenAI-compatible service.
func NewOpenAI(config *Config) (*OpenAI, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication.
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	dim := config.Dim
	if dim <= 0 {
		dim = DefaultDim
	}

	return &OpenAI{
		embedder: embedder,
		dim:      dim,
		logger:   slog.Default().With("component", "openai-embedder"),
	}, nil
}

// Dim returns the configured output dimension.
func (e *OpenAI) Dim() int {
	return e.dim
}

// EmbedText generates a vector embedding for a single text string.
func (e *OpenAI) EmbedText(ctx context.Context, text string) ([]float64, error) {
	e.logger.Debug("generating embedding for single text", "length", len(text))

	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}
	if len(vectors) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float64{}, nil
	}
	return widen(vectors[0]), nil
}

// EmbedTexts generates vector embeddings for multiple texts in a batch.
func (e *OpenAI) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	out := make([][]float64, 0, len(vectors))
	for _, v := range vectors {
		out = append(out, widen(v))
	}
	return out, nil
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, val := range v {
		out[i] = float64(val)
	}
	return out
}
