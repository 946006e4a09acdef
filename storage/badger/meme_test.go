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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/memespace/core"
	"github.com/poiesic/memespace/storage"
)

func testRepository(t *testing.T) *MemeRepository {
	t.Helper()

	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testDocument(id, jurisdiction string) *core.Document {
	return &core.Document{
		TextID: id,
		Text:   "No person shall offer a bribe to a public official.",
		Context: core.ContextDocument{
			Jurisdiction:  jurisdiction,
			LegalFamily:   "common_law",
			EnactmentDate: "1977-12-19T00:00:00Z",
		},
		Vector:   []float64{0.1, 0.2, 0.3},
		Metadata: map[string]string{"source": "test"},
	}
}

func TestMemeRepositoryRoundTrip(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	doc := testDocument("fcpa-1977", "US")
	require.NoError(t, repo.Put(ctx, doc))

	got, err := repo.Get(ctx, "fcpa-1977")
	require.NoError(t, err)
	assert.Equal(t, doc.TextID, got.TextID)
	assert.Equal(t, doc.Text, got.Text)
	assert.Equal(t, doc.Context, got.Context)
	assert.Equal(t, doc.Vector, got.Vector)
	assert.Equal(t, doc.Metadata, got.Metadata)
}

func TestMemeRepositoryMissing(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "absent")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.Delete(ctx, "absent")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemeRepositoryEmptyID(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Put(ctx, nil), storage.ErrEmptyID)
	assert.ErrorIs(t, repo.Put(ctx, testDocument("", "US")), storage.ErrEmptyID)

	_, err := repo.Get(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyID)

	assert.ErrorIs(t, repo.Delete(ctx, ""), storage.ErrEmptyID)
}

func TestMemeRepositoryPutReplaces(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	doc := testDocument("ukba-2010", "UK")
	require.NoError(t, repo.Put(ctx, doc))

	doc.Text = "A person is guilty of an offence if the person offers a financial advantage."
	require.NoError(t, repo.Put(ctx, doc))

	got, err := repo.Get(ctx, "ukba-2010")
	require.NoError(t, err)
	assert.Equal(t, doc.Text, got.Text)

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMemeRepositoryDeleteRemovesIndex(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testDocument("fcpa-1977", "US")))
	require.NoError(t, repo.Delete(ctx, "fcpa-1977"))

	_, err := repo.Get(ctx, "fcpa-1977")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	docs, err := repo.ListByJurisdiction(ctx, "US")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemeRepositoryListOrder(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	for _, id := range []string{"c-statute", "a-statute", "b-statute"} {
		require.NoError(t, repo.Put(ctx, testDocument(id, "US")))
	}

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.TextID)
	}
	assert.Equal(t, []string{"a-statute", "b-statute", "c-statute"}, ids)
}

func TestMemeRepositoryListEmpty(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemeRepositoryListByJurisdiction(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testDocument("fcpa-1977", "US")))
	require.NoError(t, repo.Put(ctx, testDocument("flra-1978", "US")))
	require.NoError(t, repo.Put(ctx, testDocument("ukba-2010", "UK")))

	docs, err := repo.ListByJurisdiction(ctx, "US")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "fcpa-1977", docs[0].TextID)
	assert.Equal(t, "flra-1978", docs[1].TextID)

	docs, err = repo.ListByJurisdiction(ctx, "FR")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemeRepositoryJurisdictionChange(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	doc := testDocument("model-law", "US")
	require.NoError(t, repo.Put(ctx, doc))

	doc.Context.Jurisdiction = "UK"
	require.NoError(t, repo.Put(ctx, doc))

	us, err := repo.ListByJurisdiction(ctx, "US")
	require.NoError(t, err)
	assert.Empty(t, us)

	uk, err := repo.ListByJurisdiction(ctx, "UK")
	require.NoError(t, err)
	require.Len(t, uk, 1)
	assert.Equal(t, "model-law", uk[0].TextID)
}

func TestMemeRepositoryClosedBackend(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	assert.ErrorIs(t, repo.Put(context.Background(), testDocument("x", "US")), storage.ErrStorageClosed)

	_, err = repo.Get(context.Background(), "x")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestMemeRepositoryManyDocuments(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		jurisdiction := "US"
		if i%2 == 1 {
			jurisdiction = "DE"
		}
		require.NoError(t, repo.Put(ctx, testDocument(fmt.Sprintf("statute-%02d", i), jurisdiction)))
	}

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 50)

	de, err := repo.ListByJurisdiction(ctx, "DE")
	require.NoError(t, err)
	assert.Len(t, de, 25)
}
