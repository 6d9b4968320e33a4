package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/event"
	"github.com/daniilsolovey/article-publisher/internal/newsportal"
	"github.com/daniilsolovey/article-publisher/internal/newsportal/newsportaltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*ArticleService, *newsportal.Manager) {
	t.Helper()

	repo := newsportaltest.New()
	repo.AddUser(db.User{ID: 1, Name: "Alice Editor"})
	repo.AddCategory(db.Category{ID: 1, Name: "Company", Scope: "news"})

	logger := noOpLogger()
	manager := newsportal.NewManager(repo, event.NewBus(logger), logger)

	return NewArticleService(manager), manager
}

func actorCtx() context.Context {
	return newsportal.ContextWithActor(context.Background(), 1)
}

func errorCode(t *testing.T, err error) int {
	t.Helper()

	var rpcErr *zenrpc.Error
	require.True(t, errors.As(err, &rpcErr), "expected zenrpc error, got %v", err)
	return rpcErr.Code
}

func TestArticleService(t *testing.T) {
	ctx := actorCtx()
	s, _ := newTestService(t)

	var articleID int

	t.Run("AddForm", func(t *testing.T) {
		form, err := s.AddForm(ctx, "news")
		require.NoError(t, err)

		assert.Equal(t, "add", form.Mode)
		assert.Equal(t, "1", form.Values["author_id"])
		assert.Equal(t, "submit", form.Fields[len(form.Fields)-1].Type)
	})

	t.Run("Add", func(t *testing.T) {
		res, err := s.Add(ctx, "news", map[string]string{"title": "Hello, World!", "content": "Body", "category_id": "1"})
		require.NoError(t, err)

		assert.Equal(t, "Hello, World! was added successfully.", res.Message)
		assert.Equal(t, "hello-world", res.Article.Slug)
		articleID = res.Article.ArticleID
	})

	t.Run("AddValidation", func(t *testing.T) {
		_, err := s.Add(ctx, "news", map[string]string{"title": "No body"})
		assert.Equal(t, 400, errorCode(t, err))
	})

	t.Run("List", func(t *testing.T) {
		page, err := s.List(ctx, "news", nil, nil)
		require.NoError(t, err)

		require.Len(t, page.Items, 1)
		assert.Equal(t, 1, page.Total)
		assert.Equal(t, 1, page.Current)
		require.NotNil(t, page.Items[0].Category)
		assert.Equal(t, "Company", page.Items[0].Category.Name)
	})

	t.Run("EditForm", func(t *testing.T) {
		form, err := s.EditForm(ctx, "news", articleID)
		require.NoError(t, err)
		assert.Equal(t, "Body", form.Values["content"])
	})

	t.Run("Edit", func(t *testing.T) {
		res, err := s.Edit(ctx, "news", articleID, map[string]string{"title": "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "renamed", res.Article.Slug)
	})

	t.Run("EditMissing", func(t *testing.T) {
		_, err := s.Edit(ctx, "news", 999, map[string]string{"title": "x"})
		assert.Equal(t, 404, errorCode(t, err))
	})

	t.Run("Delete", func(t *testing.T) {
		res, err := s.Delete(ctx, "news", articleID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed was deleted successfully.", res.Message)

		_, err = s.Delete(ctx, "news", articleID)
		assert.Equal(t, 404, errorCode(t, err))
	})

	t.Run("UnknownScope", func(t *testing.T) {
		_, err := s.List(ctx, "pages", nil, nil)
		assert.Equal(t, 404, errorCode(t, err))
	})

	t.Run("NoActor", func(t *testing.T) {
		_, err := s.AddForm(context.Background(), "news")
		assert.Equal(t, 401, errorCode(t, err))
	})
}

func TestArticleService_HookFailure(t *testing.T) {
	s, manager := newTestService(t)
	manager.Bus().Subscribe("beforePostSave", func(context.Context, any) error {
		return errors.New("moderation queue is down")
	})

	_, err := s.Add(actorCtx(), "blog", map[string]string{"title": "T", "content": "B"})
	require.Error(t, err)
	assert.Equal(t, 500, errorCode(t, err))
	assert.NotContains(t, err.Error(), "moderation")
}

func TestServer_Invoke(t *testing.T) {
	_, manager := newTestService(t)
	srv := New(noOpLogger(), manager)

	call := func(t *testing.T, body string) map[string]json.RawMessage {
		t.Helper()

		req := httptest.NewRequest(http.MethodPost, "/rpc/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(actorCtx())

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
		return resp
	}

	t.Run("AddWithNamedParams", func(t *testing.T) {
		resp := call(t, `{"jsonrpc":"2.0","id":1,"method":"article.add","params":{"scope":"news","values":{"title":"Via RPC","content":"Body"}}}`)
		require.Contains(t, resp, "result", string(resp["error"]))

		var res Result
		require.NoError(t, json.Unmarshal(resp["result"], &res))
		assert.Equal(t, "via-rpc", res.Article.Slug)
	})

	t.Run("ListWithPositionalParams", func(t *testing.T) {
		resp := call(t, `{"jsonrpc":"2.0","id":2,"method":"article.list","params":["news"]}`)
		require.Contains(t, resp, "result", string(resp["error"]))

		var page ArticlePage
		require.NoError(t, json.Unmarshal(resp["result"], &page))
		assert.Equal(t, 1, page.Total)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		resp := call(t, `{"jsonrpc":"2.0","id":3,"method":"article.publishAll","params":{}}`)
		assert.Contains(t, resp, "error")
	})
}
