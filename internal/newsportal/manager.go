package newsportal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/event"
	"github.com/go-pg/urlstruct"
)

// Repository is the storage used by the engine. *db.Repository implements it.
type Repository interface {
	ContentRepository

	ArticleByID(ctx context.Context, articleID int) (*db.Article, error)
	InsertArticle(ctx context.Context, article *db.Article) error
	UpdateArticle(ctx context.Context, article *db.Article) error
	DeleteArticle(ctx context.Context, article *db.Article) error
	Articles(ctx context.Context, filter db.ArticleFilter, pager *urlstruct.Pager) ([]db.Article, error)
	ArticlesCount(ctx context.Context, filter db.ArticleFilter) (int, error)

	CategoriesByScope(ctx context.Context, scope string) ([]db.Category, error)
	Users(ctx context.Context) ([]db.User, error)
}

type Manager struct {
	repo      Repository
	bus       *event.Bus
	log       *slog.Logger
	content   *ContentStore
	forms     *FormBuilder
	publisher *Publisher
	lister    *Lister
}

func NewManager(repo Repository, bus *event.Bus, log *slog.Logger) *Manager {
	content := NewContentStore(repo, log)
	forms := NewFormBuilder(repo, bus)

	return &Manager{
		repo:      repo,
		bus:       bus,
		log:       log,
		content:   content,
		forms:     forms,
		publisher: NewPublisher(repo, content, forms, bus, log),
		lister:    NewLister(repo),
	}
}

// Bus returns the event bus hooks subscribe to.
func (m *Manager) Bus() *event.Bus {
	return m.bus
}

func (m *Manager) ListArticles(ctx context.Context, scope Scope, categoryID *int, page int) (*ArticlePage, error) {
	return m.lister.List(ctx, ListRequest{Scope: scope, CategoryID: categoryID, Page: page})
}

// AddForm returns the empty add form of a scope with defaults filled in.
func (m *Manager) AddForm(ctx context.Context, scope Scope, actorID int) (*Form, error) {
	return m.forms.Build(ctx, scope, ModeAdd, actorID, Values{})
}

// EditForm returns the edit form of an article pre-filled with its stored values
// and body text.
func (m *Manager) EditForm(ctx context.Context, scope Scope, articleID, actorID int) (*Form, error) {
	existing, err := m.articleInScope(ctx, scope, articleID)
	if err != nil {
		return nil, err
	}

	body, err := m.content.BodyOf(ctx, existing)
	if err != nil {
		return nil, err
	}

	return m.forms.Build(ctx, scope, ModeEdit, actorID, articleValues(existing, body))
}

func (m *Manager) SubmitAdd(ctx context.Context, scope Scope, fields Values, actorID int) (*Article, error) {
	return m.publisher.Publish(ctx, PublishRequest{
		Scope:   scope,
		Mode:    ModeAdd,
		Fields:  fields,
		ActorID: actorID,
	})
}

func (m *Manager) SubmitEdit(ctx context.Context, scope Scope, articleID int, fields Values, actorID int) (*Article, error) {
	existing, err := m.articleInScope(ctx, scope, articleID)
	if err != nil {
		return nil, err
	}

	return m.publisher.Publish(ctx, PublishRequest{
		Scope:    scope,
		Mode:     ModeEdit,
		Existing: existing,
		Fields:   fields,
		ActorID:  actorID,
	})
}

func (m *Manager) DeleteArticle(ctx context.Context, scope Scope, articleID int) (*Article, error) {
	existing, err := m.articleInScope(ctx, scope, articleID)
	if err != nil {
		return nil, err
	}

	return m.publisher.Delete(ctx, scope, existing)
}

// Categories returns the categories articles of the scope can be filed under.
func (m *Manager) Categories(ctx context.Context, scope Scope) (Categories, error) {
	if _, err := LookupVariant(scope); err != nil {
		return nil, err
	}

	list, err := m.repo.CategoriesByScope(ctx, string(scope))
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// ArticleByID returns the article with its body resolved from the content store.
func (m *Manager) ArticleByID(ctx context.Context, scope Scope, articleID int) (*Article, error) {
	existing, err := m.articleInScope(ctx, scope, articleID)
	if err != nil {
		return nil, err
	}

	body, err := m.content.BodyOf(ctx, existing)
	if err != nil {
		return nil, err
	}

	article := NewArticle(existing)
	article.Body = body

	return &article, nil
}

// articleInScope returns ErrNotFound for a missing article and for an article
// that belongs to another scope.
func (m *Manager) articleInScope(ctx context.Context, scope Scope, articleID int) (*db.Article, error) {
	if _, err := LookupVariant(scope); err != nil {
		return nil, err
	}

	existing, err := m.repo.ArticleByID(ctx, articleID)
	if err != nil {
		m.log.ErrorContext(ctx, "load article failed", "scope", scope, "articleId", articleID, "error", err)
		return nil, ErrPublishFailed
	} else if existing == nil || existing.Scope != string(scope) {
		return nil, ErrNotFound
	}

	return existing, nil
}
