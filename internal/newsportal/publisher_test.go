package newsportal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesFieldsAndStoresContent", func(t *testing.T) {
		m, repo := newTestManager(t)
		body := "<p>Quarterly results are in.</p>"

		var saves int
		m.Bus().Subscribe("beforeArticleSave", func(_ context.Context, payload any) error {
			saves++
			evt := payload.(*ArticleEvent)
			assert.Equal(t, ScopeNews, evt.Scope)
			assert.Equal(t, body, evt.Body)
			assert.Empty(t, repo.ArticlesAll(), "hook must run before the article is written")
			return nil
		})

		article, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Hello, World!", body), testActorID)
		require.NoError(t, err)
		assert.Equal(t, 1, saves)

		assert.NotZero(t, article.ID)
		assert.Equal(t, "hello-world", article.Slug)
		assert.Equal(t, "Quarterly results are in.", article.Summary)
		assert.Equal(t, Hash(body), article.ContentItemID)
		assert.Equal(t, testActorID, article.UserID)
		require.NotNil(t, article.AuthorID)
		assert.Equal(t, testActorID, *article.AuthorID)
		require.NotNil(t, article.CategoryID)
		assert.Equal(t, 1, *article.CategoryID)
		assert.True(t, article.UseInEmail)
		assert.Nil(t, article.ImageID)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), article.PublishDate)
		assert.Equal(t, testNow, article.CreatedAt)

		stored := repo.ArticlesAll()
		require.Len(t, stored, 1)
		assert.Equal(t, article.Article.ID, stored[0].ID)

		item, err := m.content.Resolve(ctx, stored[0].ContentItemID)
		require.NoError(t, err)
		require.NotNil(t, item)
		got, err := item.Body()
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("ProvidedSummaryIsKept", func(t *testing.T) {
		m, _ := newTestManager(t)
		fields := newsFields("Title", "Some body")
		fields[FieldSummary] = "Hand written"

		article, err := m.SubmitAdd(ctx, ScopeNews, fields, testActorID)
		require.NoError(t, err)
		assert.Equal(t, "Hand written", article.Summary)
	})

	t.Run("DefaultsWithoutOptionalFields", func(t *testing.T) {
		m, _ := newTestManager(t)

		article, err := m.SubmitAdd(ctx, ScopeNews, Values{FieldTitle: "Minimal", FieldContent: "Body"}, 2)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), article.PublishDate)
		require.NotNil(t, article.AuthorID)
		assert.Equal(t, 2, *article.AuthorID)
		assert.Nil(t, article.CategoryID)
		assert.False(t, article.UseInEmail)
	})

	t.Run("EmptySlugFallsBackToArticleType", func(t *testing.T) {
		m, _ := newTestManager(t)

		news, err := m.SubmitAdd(ctx, ScopeNews, Values{FieldTitle: "!!!", FieldContent: "Body"}, testActorID)
		require.NoError(t, err)
		assert.Equal(t, "article", news.Slug)

		post, err := m.SubmitAdd(ctx, ScopeBlog, Values{FieldTitle: "???", FieldContent: "Body"}, testActorID)
		require.NoError(t, err)
		assert.Equal(t, "post", post.Slug)
	})

	t.Run("BlogGuestFields", func(t *testing.T) {
		m, _ := newTestManager(t)

		article, err := m.SubmitAdd(ctx, ScopeBlog, Values{
			FieldTitle:            "Guest post",
			FieldContent:          "Body",
			FieldGuestAuthorName:  "Carol",
			FieldGuestCompanyName: "",
			FieldGuestCompanyURL:  "https://example.com",
			FieldCategoryID:       "3",
		}, testActorID)
		require.NoError(t, err)

		assert.Equal(t, string(ScopeBlog), article.Scope)
		require.NotNil(t, article.GuestAuthorName)
		assert.Equal(t, "Carol", *article.GuestAuthorName)
		assert.Nil(t, article.GuestCompanyName)
		require.NotNil(t, article.GuestCompanyURL)
		assert.Equal(t, "https://example.com", *article.GuestCompanyURL)
	})

	t.Run("HookMutationIsPersisted", func(t *testing.T) {
		m, repo := newTestManager(t)
		m.Bus().Subscribe("beforePostSave", func(_ context.Context, payload any) error {
			payload.(*ArticleEvent).Article.Summary = "Set by hook"
			return nil
		})

		_, err := m.SubmitAdd(ctx, ScopeBlog, Values{FieldTitle: "Post", FieldContent: "Body"}, testActorID)
		require.NoError(t, err)

		stored := repo.ArticlesAll()
		require.Len(t, stored, 1)
		assert.Equal(t, "Set by hook", stored[0].Summary)
	})

	t.Run("ValidationFailureWritesNothing", func(t *testing.T) {
		m, repo := newTestManager(t)

		_, err := m.SubmitAdd(ctx, ScopeNews, Values{FieldTitle: "No body"}, testActorID)
		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, FieldErrors(err), FieldContent)

		assert.Empty(t, repo.ArticlesAll())
		assert.Zero(t, repo.ContentItemsCount())
	})

	t.Run("OverflowingReferenceIsValidationFailure", func(t *testing.T) {
		m, repo := newTestManager(t)
		fields := newsFields("Title", "Body")
		fields[FieldCategoryID] = "99999999999999999999"

		_, err := m.SubmitAdd(ctx, ScopeNews, fields, testActorID)
		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, FieldErrors(err), FieldCategoryID)

		assert.Empty(t, repo.ArticlesAll())
		assert.Zero(t, repo.ContentItemsCount())
	})

	t.Run("CategoryOfOtherScopeIsValidationFailure", func(t *testing.T) {
		m, repo := newTestManager(t)

		_, err := m.SubmitAdd(ctx, ScopeNews, Values{FieldTitle: "Title", FieldContent: "Body", FieldCategoryID: "3"}, testActorID)
		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, FieldErrors(err), FieldCategoryID)
		assert.Empty(t, repo.ArticlesAll())
	})

	t.Run("HookErrorIsOpaqueFailure", func(t *testing.T) {
		m, repo := newTestManager(t)
		m.Bus().Subscribe("beforeArticleSave", func(context.Context, any) error {
			return errors.New("spam filter rejected")
		})

		_, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Title", "Body"), testActorID)
		assert.Equal(t, ErrPublishFailed, err)
		assert.Empty(t, repo.ArticlesAll())
	})

	t.Run("InsertErrorKeepsReusableContent", func(t *testing.T) {
		m, repo := newTestManager(t)
		repo.InsertArticleFunc = func(context.Context, *db.Article) error {
			return errors.New("connection reset")
		}

		_, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Title", "Body"), testActorID)
		assert.Equal(t, ErrPublishFailed, err)
		assert.Empty(t, repo.ArticlesAll())
		assert.Equal(t, 1, repo.ContentItemsCount())
	})

	t.Run("NoContentPublishedOnAdd", func(t *testing.T) {
		m, _ := newTestManager(t)
		var published int
		m.Bus().Subscribe(EventContentPublished, func(context.Context, any) error {
			published++
			return nil
		})

		_, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Title", "Body"), testActorID)
		require.NoError(t, err)
		assert.Zero(t, published)
	})

	t.Run("UnknownScope", func(t *testing.T) {
		m, _ := newTestManager(t)

		_, err := m.SubmitAdd(ctx, Scope("pages"), newsFields("Title", "Body"), testActorID)
		assert.ErrorIs(t, err, ErrUnknownScope)
	})
}

func TestPublisher_MetricLabels(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	metrics.PublishTotal.Reset()
	metrics.PublishDuration.Reset()

	for _, scope := range []Scope{"junk-0", "junk-1", "junk-2", "junk-3", "junk-4"} {
		_, err := m.SubmitAdd(ctx, scope, newsFields("Title", "Body"), testActorID)
		require.ErrorIs(t, err, ErrUnknownScope)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.PublishTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.PublishDuration))
	assert.Equal(t, float64(5), testutil.ToFloat64(
		metrics.PublishTotal.WithLabelValues(metrics.LabelUnknown, string(ModeAdd), metrics.ResultNotFound),
	))

	_, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Title", "Body"), testActorID)
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.PublishTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.PublishTotal.WithLabelValues(string(ScopeNews), string(ModeAdd), metrics.ResultOK),
	))
}

func TestPublisher_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("ReusingBodySharesContentItem", func(t *testing.T) {
		m, repo := newTestManager(t)

		first, err := m.SubmitAdd(ctx, ScopeNews, newsFields("First", "Shared body"), testActorID)
		require.NoError(t, err)
		second, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Second", "Other body"), testActorID)
		require.NoError(t, err)
		require.Equal(t, 2, repo.ContentItemsCount())

		edited, err := m.SubmitEdit(ctx, ScopeNews, second.ID, Values{FieldContent: "Shared body"}, testActorID)
		require.NoError(t, err)

		assert.Equal(t, first.ContentItemID, edited.ContentItemID)
		assert.Equal(t, 2, repo.ContentItemsCount())
	})

	t.Run("BlankSummaryIsRegenerated", func(t *testing.T) {
		m, _ := newTestManager(t)
		fields := newsFields("Title", "The body of the article")
		fields[FieldSummary] = "Custom summary"

		article, err := m.SubmitAdd(ctx, ScopeNews, fields, testActorID)
		require.NoError(t, err)
		require.Equal(t, "Custom summary", article.Summary)

		edited, err := m.SubmitEdit(ctx, ScopeNews, article.ID, Values{FieldSummary: "   "}, testActorID)
		require.NoError(t, err)
		assert.Equal(t, "The body of the article", edited.Summary)
	})

	t.Run("AbsentFieldsAreKept", func(t *testing.T) {
		m, _ := newTestManager(t)
		fields := newsFields("Title", "Body")
		fields[FieldSummary] = "Custom summary"
		fields[FieldImageID] = "img-1"

		article, err := m.SubmitAdd(ctx, ScopeNews, fields, testActorID)
		require.NoError(t, err)

		edited, err := m.SubmitEdit(ctx, ScopeNews, article.ID, Values{FieldTitle: "Renamed"}, 2)
		require.NoError(t, err)

		assert.Equal(t, "Custom summary", edited.Summary)
		assert.Equal(t, Hash("Body"), edited.ContentItemID)
		require.NotNil(t, edited.ImageID)
		assert.Equal(t, "img-1", *edited.ImageID)
		assert.True(t, edited.UseInEmail)
		assert.Equal(t, 2, edited.UserID)
		require.NotNil(t, edited.AuthorID)
		assert.Equal(t, testActorID, *edited.AuthorID)
		assert.Equal(t, article.CreatedAt, edited.CreatedAt)
	})

	t.Run("PartialFieldsKeepStoredValues", func(t *testing.T) {
		m, repo := newTestManager(t)

		article, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Title", "Body"), testActorID)
		require.NoError(t, err)

		existing, err := repo.ArticleByID(ctx, article.ID)
		require.NoError(t, err)

		edited, err := m.publisher.Publish(ctx, PublishRequest{
			Scope:    ScopeNews,
			Mode:     ModeEdit,
			Existing: existing,
			Fields:   Values{FieldTitle: "Renamed"},
			ActorID:  2,
		})
		require.NoError(t, err)

		assert.Equal(t, "renamed", edited.Slug)
		assert.Equal(t, "Body", edited.Body)
		assert.Equal(t, Hash("Body"), edited.ContentItemID)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), edited.PublishDate)
		require.NotNil(t, edited.AuthorID)
		assert.Equal(t, testActorID, *edited.AuthorID)
		require.NotNil(t, edited.CategoryID)
		assert.Equal(t, 1, *edited.CategoryID)
		assert.True(t, edited.UseInEmail)
		assert.Equal(t, 2, edited.UserID)
	})

	t.Run("SlugFollowsTitle", func(t *testing.T) {
		m, _ := newTestManager(t)

		article, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Old Title", "Body"), testActorID)
		require.NoError(t, err)
		require.Equal(t, "old-title", article.Slug)

		edited, err := m.SubmitEdit(ctx, ScopeNews, article.ID, Values{FieldTitle: "New Title", FieldSlug: "ignored"}, testActorID)
		require.NoError(t, err)
		assert.Equal(t, "new-title", edited.Slug)
	})

	t.Run("ContentPublishedAfterCommit", func(t *testing.T) {
		m, repo := newTestManager(t)

		article, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Before", "Body"), testActorID)
		require.NoError(t, err)

		var got *ContentPublished
		m.Bus().Subscribe(EventContentPublished, func(_ context.Context, payload any) error {
			got = payload.(*ContentPublished)
			stored := repo.ArticlesAll()
			require.Len(t, stored, 1)
			assert.Equal(t, "After", stored[0].Title, "event must see the committed row")
			return nil
		})

		_, err = m.SubmitEdit(ctx, ScopeNews, article.ID, Values{FieldTitle: "After", FieldSummary: "Short", FieldContent: "New body"}, testActorID)
		require.NoError(t, err)

		require.NotNil(t, got)
		assert.Equal(t, article.ID, got.ContentID)
		assert.Equal(t, "After\nShort\nNew body", got.Content)
	})

	t.Run("ContentPublishedErrorDoesNotFailEdit", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.Bus().Subscribe(EventContentPublished, func(context.Context, any) error {
			return errors.New("indexer down")
		})

		article, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Title", "Body"), testActorID)
		require.NoError(t, err)

		_, err = m.SubmitEdit(ctx, ScopeNews, article.ID, Values{FieldTitle: "Changed"}, testActorID)
		assert.NoError(t, err)
	})

	t.Run("MissingArticle", func(t *testing.T) {
		m, _ := newTestManager(t)

		_, err := m.SubmitEdit(ctx, ScopeNews, 404, Values{FieldTitle: "x"}, testActorID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ArticleOfOtherScope", func(t *testing.T) {
		m, _ := newTestManager(t)

		article, err := m.SubmitAdd(ctx, ScopeNews, newsFields("News", "Body"), testActorID)
		require.NoError(t, err)

		_, err = m.SubmitEdit(ctx, ScopeBlog, article.ID, Values{FieldTitle: "x"}, testActorID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PublishWithoutExistingIsNotFound", func(t *testing.T) {
		m, _ := newTestManager(t)

		_, err := m.publisher.Publish(ctx, PublishRequest{Scope: ScopeNews, Mode: ModeEdit, Fields: newsFields("x", "y")})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("FailedUpdateLeavesStoredArticle", func(t *testing.T) {
		m, repo := newTestManager(t)

		article, err := m.SubmitAdd(ctx, ScopeNews, newsFields("Stable", "Body"), testActorID)
		require.NoError(t, err)

		repo.UpdateArticleFunc = func(context.Context, *db.Article) error {
			return errors.New("deadlock detected")
		}

		_, err = m.SubmitEdit(ctx, ScopeNews, article.ID, Values{FieldTitle: "Broken"}, testActorID)
		assert.Equal(t, ErrPublishFailed, err)

		stored := repo.ArticlesAll()
		require.Len(t, stored, 1)
		assert.Equal(t, "Stable", stored[0].Title)
	})
}

func TestPublisher_Delete(t *testing.T) {
	ctx := context.Background()
	m, repo := newTestManager(t)

	article, err := m.SubmitAdd(ctx, ScopeBlog, Values{FieldTitle: "Gone soon", FieldContent: "Body"}, testActorID)
	require.NoError(t, err)

	_, err = m.DeleteArticle(ctx, ScopeNews, article.ID)
	assert.ErrorIs(t, err, ErrNotFound, "article of another scope")

	deleted, err := m.DeleteArticle(ctx, ScopeBlog, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gone soon", deleted.Title)
	assert.Empty(t, repo.ArticlesAll())

	item, err := m.content.Resolve(ctx, article.ContentItemID)
	require.NoError(t, err)
	assert.NotNil(t, item, "content item outlives the article")

	_, err = m.DeleteArticle(ctx, ScopeBlog, article.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
