package newsportal

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/newsportal/newsportaltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentRepoStub struct {
	contentItemByID   func(ctx context.Context, id string) (*db.ContentItem, error)
	insertContentItem func(ctx context.Context, item *db.ContentItem) error
}

func (s *contentRepoStub) ContentItemByID(ctx context.Context, id string) (*db.ContentItem, error) {
	return s.contentItemByID(ctx, id)
}

func (s *contentRepoStub) InsertContentItem(ctx context.Context, item *db.ContentItem) error {
	return s.insertContentItem(ctx, item)
}

func TestHash(t *testing.T) {
	a := Hash("body text")
	assert.Len(t, a, 64)
	assert.Equal(t, a, Hash("body text"))
	assert.NotEqual(t, a, Hash("body text."))
}

func TestContentStore_GetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("SameBodyIsStoredOnce", func(t *testing.T) {
		repo := newsportaltest.New()
		store := NewContentStore(repo, noOpLogger())

		first, err := store.GetOrCreate(ctx, "<p>Shared body</p>")
		require.NoError(t, err)
		second, err := store.GetOrCreate(ctx, "<p>Shared body</p>")
		require.NoError(t, err)

		assert.Equal(t, Hash("<p>Shared body</p>"), first.ID)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, repo.ContentItemsCount())

		body, err := second.Body()
		require.NoError(t, err)
		assert.Equal(t, "<p>Shared body</p>", body)
	})

	t.Run("DifferentBodiesGetDifferentItems", func(t *testing.T) {
		repo := newsportaltest.New()
		store := NewContentStore(repo, noOpLogger())

		a, err := store.GetOrCreate(ctx, "one")
		require.NoError(t, err)
		b, err := store.GetOrCreate(ctx, "two")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, 2, repo.ContentItemsCount())
	})

	t.Run("ConcurrentCallsShareOneItem", func(t *testing.T) {
		repo := newsportaltest.New()
		store := NewContentStore(repo, noOpLogger())

		const workers = 16
		var (
			wg  sync.WaitGroup
			ids = make([]string, workers)
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				item, err := store.GetOrCreate(ctx, "racing body")
				if assert.NoError(t, err) {
					ids[i] = item.ID
				}
			}(i)
		}
		wg.Wait()

		for _, id := range ids {
			assert.Equal(t, Hash("racing body"), id)
		}
		assert.Equal(t, 1, repo.ContentItemsCount())
	})

	t.Run("LostInsertRaceReturnsWinner", func(t *testing.T) {
		repo := newsportaltest.New()
		repo.BeforeInsertContentItem = func(item *db.ContentItem) {
			repo.BeforeInsertContentItem = nil
			winner := &db.ContentItem{ID: item.ID, Content: `{"content":"racing body"}`}
			require.NoError(t, repo.InsertContentItem(ctx, winner))
		}
		store := NewContentStore(repo, noOpLogger())

		item, err := store.GetOrCreate(ctx, "racing body")
		require.NoError(t, err)
		assert.Equal(t, Hash("racing body"), item.ID)
		assert.Equal(t, 1, repo.ContentItemsCount())
	})

	t.Run("ConflictWithoutWinnerFails", func(t *testing.T) {
		store := NewContentStore(&contentRepoStub{
			contentItemByID:   func(context.Context, string) (*db.ContentItem, error) { return nil, nil },
			insertContentItem: func(context.Context, *db.ContentItem) error { return db.ErrConflict },
		}, noOpLogger())

		_, err := store.GetOrCreate(ctx, "body")
		assert.ErrorIs(t, err, ErrStorageFailure)
	})

	t.Run("LookupErrorIsStorageFailure", func(t *testing.T) {
		store := NewContentStore(&contentRepoStub{
			contentItemByID: func(context.Context, string) (*db.ContentItem, error) {
				return nil, errors.New("connection refused")
			},
		}, noOpLogger())

		_, err := store.GetOrCreate(ctx, "body")
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestContentStore_Resolve(t *testing.T) {
	ctx := context.Background()
	repo := newsportaltest.New()
	store := NewContentStore(repo, noOpLogger())

	missing, err := store.Resolve(ctx, Hash("nothing"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := store.GetOrCreate(ctx, "stored")
	require.NoError(t, err)

	got, err := store.Resolve(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Content, got.Content)
}

func TestContentItem_Body(t *testing.T) {
	payload, err := EncodeContent(`quote " and <b>tag</b>`)
	require.NoError(t, err)

	body, err := ContentItem{ContentItem: db.ContentItem{ID: "x", Content: payload}}.Body()
	require.NoError(t, err)
	assert.Equal(t, `quote " and <b>tag</b>`, body)

	_, err = ContentItem{ContentItem: db.ContentItem{ID: "x", Content: "not json"}}.Body()
	assert.Error(t, err)
}
