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


package storage

import (
	"context"

	"github.com/poiesic/memespace/core"
)

// MemeRepository stores legal meme documents keyed by text ID.
// Implementations must be safe for concurrent use.
type MemeRepository interface {
	// Put stores a document, replacing any existing one with the same
	// text ID. Returns ErrEmptyID for a document without an ID.
	Put(ctx context.Context, doc *core.Document) error

	// Get retrieves a document by text ID.
	// Returns ErrNotFound if no document has that ID.
	Get(ctx context.Context, id string) (*core.Document, error)

	// Delete removes a document and its index entries by text ID.
	// Returns ErrNotFound if no document has that ID.
	Delete(ctx context.Context, id string) error

	// List returns every stored document, ordered by text ID.
	List(ctx context.Context) ([]*core.Document, error)

	// ListByJurisdiction returns the documents of one jurisdiction,
	// ordered by text ID. An unknown jurisdiction yields an empty list.
	ListByJurisdiction(ctx context.Context, jurisdiction string) ([]*core.Document, error)

	// Close releases repository resources.
	Close() error
}
