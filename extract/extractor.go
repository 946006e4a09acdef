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
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/memespace/core"
	"github.com/poiesic/memespace/embed"
)

// Extractor populates the feature channels of a legal meme vector.
// Construct once, share freely: after construction the pattern table is
// read-only and Extract has no side effects beyond the meme it is given.
type Extractor struct {
	patterns patternTable
	embedder embed.Embedder
	domain   DomainExtractor
	disabled map[core.Channel]bool
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithEmbedder sets the semantic-channel provider.
// Default is the deterministic placeholder at embed.DefaultDim.
func WithEmbedder(e embed.Embedder) Option {
	return func(x *Extractor) error {
		if e != nil {
			x.embedder = e
		}
		return nil
	}
}

// WithDomainExtractor appends a domain extractor's features to the
// enforcement channel.
func WithDomainExtractor(d DomainExtractor) Option {
	return func(x *Extractor) error {
		x.domain = d
		return nil
	}
}

// WithCustomPatterns merges custom regular expressions into the pattern
// table. Malformed patterns are logged and skipped.
func WithCustomPatterns(patterns map[string]string) Option {
	return func(x *Extractor) error {
		x.patterns = compilePatterns(patterns, x.logger)
		return nil
	}
}

// WithDisabledChannels disables the given channels; each yields a
// zero-length sequence instead of being computed.
func WithDisabledChannels(channels ...core.Channel) Option {
	return func(x *Extractor) error {
		for _, ch := range channels {
			x.disabled[ch] = true
		}
		return nil
	}
}

// WithClock sets the evaluation-time source for the temporal channel.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(x *Extractor) error {
		if now != nil {
			x.now = now
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(x *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		x.logger = logger
		return nil
	}
}

// NewExtractor creates an extractor with the default pattern table.
func NewExtractor(opts ...Option) (*Extractor, error) {
	x := &Extractor{
		embedder: embed.NewDeterministic(embed.DefaultDim),
		disabled: map[core.Channel]bool{},
		now:      time.Now,
		logger:   slog.Default().With("component", "extractor"),
	}
	for _, opt := range opts {
		if err := opt(x); err != nil {
			return nil, err
		}
	}
	if x.patterns == nil {
		x.patterns = compilePatterns(nil, x.logger)
	}
	return x, nil
}

// Extract fills the meme's feature channels and consolidates them into its
// vector. Disabled channels stay empty. Re-running extraction recomputes
// the vector from scratch; it is never patched incrementally.
func (x *Extractor) Extract(ctx context.Context, m *core.LegalMemeVector) error {
	if m == nil {
		return ErrNilMeme
	}
	if m.Context == nil {
		return ErrNilContext
	}

	now := x.now()

	if !x.disabled[core.ChannelStructural] {
		m.Features.Structural = x.structuralFeatures(m.Text)
	} else {
		m.Features.Structural = nil
	}

	if !x.disabled[core.ChannelSemantic] {
		semantic, err := x.embedder.EmbedText(ctx, m.Text)
		if err != nil {
			return err
		}
		m.Features.Semantic = semantic
	} else {
		m.Features.Semantic = nil
	}

	if !x.disabled[core.ChannelTemporal] {
		m.Features.Temporal = temporalFeatures(m.Context, now)
	} else {
		m.Features.Temporal = nil
	}

	if !x.disabled[core.ChannelCultural] {
		m.Features.Cultural = culturalFeatures(m.Context)
	} else {
		m.Features.Cultural = nil
	}

	if !x.disabled[core.ChannelEnforcement] {
		enforcement := enforcementFeatures(m.Text)
		if x.domain != nil {
			domainFeatures, err := x.domain.ExtractDomainFeatures(m.Text)
			if err != nil {
				return err
			}
			enforcement = append(enforcement, domainFeatures...)
		}
		m.Features.Enforcement = enforcement
	} else {
		m.Features.Enforcement = nil
	}

	if err := m.Consolidate(); err != nil {
		return err
	}

	x.logger.Debug("extracted features",
		"text_id", m.TextID, "dim", m.Dim())
	return nil
}
