// Package newsportaltest provides an in-memory newsportal.Repository for tests.
package newsportaltest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/urlstruct"
)

// Repository keeps rows in maps guarded by a mutex. The func fields, when set,
// replace the corresponding method so tests can inject failures.
type Repository struct {
	mu sync.Mutex

	contentItems map[string]db.ContentItem
	articles     map[int]db.Article
	categories   []db.Category
	users        []db.User
	nextID       int

	// BeforeInsertContentItem runs before the content item insert, outside the lock.
	BeforeInsertContentItem func(item *db.ContentItem)

	InsertArticleFunc func(ctx context.Context, article *db.Article) error
	UpdateArticleFunc func(ctx context.Context, article *db.Article) error
	ArticleByIDFunc   func(ctx context.Context, articleID int) (*db.Article, error)
}

func New() *Repository {
	return &Repository{
		contentItems: make(map[string]db.ContentItem),
		articles:     make(map[int]db.Article),
		nextID:       1,
	}
}

func (r *Repository) AddCategory(c db.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = append(r.categories, c)
}

func (r *Repository) AddUser(u db.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, u)
}

// ContentItemsCount returns the number of stored content items.
func (r *Repository) ContentItemsCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.contentItems)
}

// ArticlesAll returns a copy of all stored articles ordered by id.
func (r *Repository) ArticlesAll() []db.Article {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]db.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (r *Repository) ContentItemByID(_ context.Context, id string) (*db.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.contentItems[id]
	if !ok {
		return nil, nil
	}

	return &item, nil
}

func (r *Repository) InsertContentItem(_ context.Context, item *db.ContentItem) error {
	if r.BeforeInsertContentItem != nil {
		r.BeforeInsertContentItem(item)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contentItems[item.ID]; ok {
		return db.ErrConflict
	}
	r.contentItems[item.ID] = *item

	return nil
}

func (r *Repository) ArticleByID(ctx context.Context, articleID int) (*db.Article, error) {
	if r.ArticleByIDFunc != nil {
		return r.ArticleByIDFunc(ctx, articleID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[articleID]
	if !ok {
		return nil, nil
	}
	a.Category = r.category(a.CategoryID)

	return &a, nil
}

func (r *Repository) InsertArticle(ctx context.Context, article *db.Article) error {
	if r.InsertArticleFunc != nil {
		return r.InsertArticleFunc(ctx, article)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkContentItem(article); err != nil {
		return err
	}

	article.ID = r.nextID
	r.nextID++

	stored := *article
	stored.Category = nil
	r.articles[article.ID] = stored

	return nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article *db.Article) error {
	if r.UpdateArticleFunc != nil {
		return r.UpdateArticleFunc(ctx, article)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return fmt.Errorf("article %d: %w", article.ID, pg.ErrNoRows)
	}
	if err := r.checkContentItem(article); err != nil {
		return err
	}

	stored := *article
	stored.Category = nil
	r.articles[article.ID] = stored

	return nil
}

func (r *Repository) DeleteArticle(_ context.Context, article *db.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.articles, article.ID)

	return nil
}

func (r *Repository) Articles(_ context.Context, filter db.ArticleFilter, pager *urlstruct.Pager) ([]db.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.filter(filter)
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PublishDate.Equal(list[j].PublishDate) {
			return list[i].PublishDate.After(list[j].PublishDate)
		}
		return list[i].ID > list[j].ID
	})

	offset, limit := pager.GetOffset(), pager.GetLimit()
	if offset >= len(list) {
		return []db.Article{}, nil
	}

	end := len(list)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}

	return list[offset:end], nil
}

func (r *Repository) ArticlesCount(_ context.Context, filter db.ArticleFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.filter(filter)), nil
}

func (r *Repository) CategoriesByScope(_ context.Context, scope string) ([]db.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []db.Category
	for _, c := range r.categories {
		if c.Scope == scope {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *Repository) Users(context.Context) ([]db.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]db.User(nil), r.users...), nil
}

func (r *Repository) filter(filter db.ArticleFilter) []db.Article {
	var out []db.Article
	for _, a := range r.articles {
		if a.Scope != filter.Scope {
			continue
		}
		if filter.CategoryID != nil && (a.CategoryID == nil || *a.CategoryID != *filter.CategoryID) {
			continue
		}

		a.Category = r.category(a.CategoryID)
		out = append(out, a)
	}

	return out
}

func (r *Repository) category(id *int) *db.Category {
	if id == nil {
		return nil
	}

	for i := range r.categories {
		if r.categories[i].ID == *id {
			c := r.categories[i]
			return &c
		}
	}

	return nil
}

// checkContentItem mirrors the foreign key on articles.contentItemId.
func (r *Repository) checkContentItem(article *db.Article) error {
	if _, ok := r.contentItems[article.ContentItemID]; !ok {
		return errors.New("insert or update on table \"articles\" violates foreign key constraint")
	}

	return nil
}
