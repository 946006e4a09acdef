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


package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/memespace/core"
	"github.com/poiesic/memespace/storage"
)

// MemeRepository implements storage.MemeRepository for BadgerDB.
// Documents are stored as JSON under their text ID, with a secondary
// index per jurisdiction.
type MemeRepository struct {
	backend *Backend
}

var _ storage.MemeRepository = (*MemeRepository)(nil)

// NewMemeRepository creates a repository on an open backend.
func NewMemeRepository(backend *Backend) *MemeRepository {
	return &MemeRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *MemeRepository) Close() error {
	return nil
}

// Put stores a document, replacing any existing one with the same text
// ID. A jurisdiction change moves the index entry.
func (r *MemeRepository) Put(ctx context.Context, doc *core.Document) error {
	if doc == nil || doc.TextID == "" {
		return storage.ErrEmptyID
	}

	value, err := core.MarshalDocument(doc)
	if err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMemeKey(doc.TextID)

		old, err := readDocument(tx, key)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		if old != nil && old.Context.Jurisdiction != doc.Context.Jurisdiction {
			if err := tx.Delete(makeJurisdictionKey(old.Context.Jurisdiction, old.TextID)); err != nil {
				return err
			}
		}

		if err := tx.Set(key, value); err != nil {
			return err
		}
		if err := tx.Set(makeJurisdictionKey(doc.Context.Jurisdiction, doc.TextID), []byte(doc.TextID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Get retrieves a document by text ID.
func (r *MemeRepository) Get(ctx context.Context, id string) (*core.Document, error) {
	if id == "" {
		return nil, storage.ErrEmptyID
	}

	var doc *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		doc, err = readDocument(tx, makeMemeKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document and its jurisdiction index entry.
func (r *MemeRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return storage.ErrEmptyID
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMemeKey(id)
		doc, err := readDocument(tx, key)
		if err != nil {
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		if err := tx.Delete(makeJurisdictionKey(doc.Context.Jurisdiction, id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// List returns every stored document, ordered by text ID.
func (r *MemeRepository) List(ctx context.Context) ([]*core.Document, error) {
	var docs []*core.Document

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(memePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				doc, err := core.UnmarshalDocument(val)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// ListByJurisdiction returns the documents of one jurisdiction via the
// secondary index, ordered by text ID.
func (r *MemeRepository) ListByJurisdiction(ctx context.Context, jurisdiction string) ([]*core.Document, error) {
	var docs []*core.Document

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialJurisdictionKey(jurisdiction)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			id := string(iter.Item().Key()[len(prefix):])
			doc, err := readDocument(tx, makeMemeKey(id))
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// readDocument reads and parses one document inside a transaction.
func readDocument(tx *badger.Txn, key []byte) (*core.Document, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var doc *core.Document
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = core.UnmarshalDocument(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
