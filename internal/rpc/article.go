package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/article-publisher/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

var errNoActor = zenrpc.NewStringError(401, "acting user is required")

// ArticleService provides RPC methods for news and blog articles.
type ArticleService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewArticleService(manager *newsportal.Manager) *ArticleService {
	return &ArticleService{manager: manager}
}

// List returns one page of articles of the scope sorted by publishDate DESC.
//
//zenrpc:scope news or blog
//zenrpc:categoryId optional category filter
//zenrpc:page=1 page number (1-based)
//zenrpc:return page of article summaries
//zenrpc:401 acting user is required
//zenrpc:404 unknown scope
//zenrpc:500 internal server error
func (s *ArticleService) List(ctx context.Context, scope string, categoryId *int, page *int) (*ArticlePage, error) {
	if _, ok := newsportal.ActorFromContext(ctx); !ok {
		return nil, errNoActor
	}

	p := 1
	if page != nil {
		p = *page
	}

	list, err := s.manager.ListArticles(ctx, newsportal.Scope(scope), categoryId, p)
	if err != nil {
		return nil, newError(newsportal.Scope(scope), newsportal.ModeAdd, err)
	}

	return NewArticlePage(list), nil
}

// AddForm returns the field list and defaults for a new article.
//
//zenrpc:scope news or blog
//zenrpc:return form schema
//zenrpc:401 acting user is required
//zenrpc:404 unknown scope
//zenrpc:500 internal server error
func (s *ArticleService) AddForm(ctx context.Context, scope string) (*Form, error) {
	actorID, ok := newsportal.ActorFromContext(ctx)
	if !ok {
		return nil, errNoActor
	}

	form, err := s.manager.AddForm(ctx, newsportal.Scope(scope), actorID)
	if err != nil {
		return nil, newError(newsportal.Scope(scope), newsportal.ModeAdd, err)
	}

	return NewForm(form), nil
}

// EditForm returns the field list pre-filled with the stored article.
//
//zenrpc:scope news or blog
//zenrpc:id article id
//zenrpc:return form schema
//zenrpc:401 acting user is required
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) EditForm(ctx context.Context, scope string, id int) (*Form, error) {
	actorID, ok := newsportal.ActorFromContext(ctx)
	if !ok {
		return nil, errNoActor
	}

	form, err := s.manager.EditForm(ctx, newsportal.Scope(scope), id, actorID)
	if err != nil {
		return nil, newError(newsportal.Scope(scope), newsportal.ModeEdit, err)
	}

	return NewForm(form), nil
}

// Add validates and publishes a new article.
//
//zenrpc:scope news or blog
//zenrpc:values form values keyed by field key
//zenrpc:return saved article
//zenrpc:400 validation failed, data holds field errors
//zenrpc:401 acting user is required
//zenrpc:404 unknown scope
//zenrpc:500 publish failed
func (s *ArticleService) Add(ctx context.Context, scope string, values map[string]string) (*Result, error) {
	actorID, ok := newsportal.ActorFromContext(ctx)
	if !ok {
		return nil, errNoActor
	}

	article, err := s.manager.SubmitAdd(ctx, newsportal.Scope(scope), values, actorID)
	if err != nil {
		return nil, newError(newsportal.Scope(scope), newsportal.ModeAdd, err)
	}

	return newResult(article, "added"), nil
}

// Edit overwrites the provided fields of an article and republishes it.
//
//zenrpc:scope news or blog
//zenrpc:id article id
//zenrpc:values form values keyed by field key, absent keys keep their value
//zenrpc:return saved article
//zenrpc:400 validation failed, data holds field errors
//zenrpc:401 acting user is required
//zenrpc:404 article not found
//zenrpc:500 publish failed
func (s *ArticleService) Edit(ctx context.Context, scope string, id int, values map[string]string) (*Result, error) {
	actorID, ok := newsportal.ActorFromContext(ctx)
	if !ok {
		return nil, errNoActor
	}

	article, err := s.manager.SubmitEdit(ctx, newsportal.Scope(scope), id, values, actorID)
	if err != nil {
		return nil, newError(newsportal.Scope(scope), newsportal.ModeEdit, err)
	}

	return newResult(article, "updated"), nil
}

// Delete removes an article. Its stored body text is kept.
//
//zenrpc:scope news or blog
//zenrpc:id article id
//zenrpc:return deleted article
//zenrpc:401 acting user is required
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) Delete(ctx context.Context, scope string, id int) (*Result, error) {
	if _, ok := newsportal.ActorFromContext(ctx); !ok {
		return nil, errNoActor
	}

	article, err := s.manager.DeleteArticle(ctx, newsportal.Scope(scope), id)
	if err != nil {
		return nil, newError(newsportal.Scope(scope), newsportal.ModeEdit, err)
	}

	return newResult(article, "deleted"), nil
}

func newResult(article *newsportal.Article, action string) *Result {
	variant, _ := newsportal.LookupVariant(newsportal.Scope(article.Scope))
	a := NewArticle(*article)

	return &Result{
		Message: variant.SuccessMessage(article.Title, action),
		Article: &a,
	}
}

func newError(scope newsportal.Scope, mode newsportal.Mode, err error) error {
	switch {
	case errors.Is(err, newsportal.ErrUnknownScope):
		return zenrpc.NewStringError(404, "unknown scope")
	case errors.Is(err, newsportal.ErrNotFound):
		return zenrpc.NewStringError(404, "article not found")
	}

	message := "internal server error"
	if variant, verr := newsportal.LookupVariant(scope); verr == nil {
		message = variant.FailureMessage(mode)
	}

	if errors.Is(err, newsportal.ErrValidationFailed) {
		return &zenrpc.Error{Code: 400, Message: message, Data: newsportal.FieldErrors(err)}
	}

	return zenrpc.NewStringError(500, message)
}
