package newsportal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/metrics"
	"github.com/go-pg/urlstruct"
)

// PageSize is the fixed number of articles per listing page.
const PageSize = 20

type ListRequest struct {
	Scope      Scope
	CategoryID *int
	// Page is 1-based, anything below 1 is treated as the first page.
	Page int
}

type Lister struct {
	repo Repository
}

func NewLister(repo Repository) *Lister {
	return &Lister{
		repo: repo,
	}
}

// List returns one page of the scope's articles, newest first, and the total
// number of matching articles. A page past the end has no items.
func (l *Lister) List(ctx context.Context, req ListRequest) (*ArticlePage, error) {
	if _, err := LookupVariant(req.Scope); err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	pager := &urlstruct.Pager{Limit: PageSize, MaxLimit: PageSize}
	pager.SetPage(page)

	filter := db.ArticleFilter{Scope: string(req.Scope), CategoryID: req.CategoryID}

	list, err := l.repo.Articles(ctx, filter, pager)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	total, err := l.repo.ArticlesCount(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get articles count: %w", err)
	}

	metrics.ListTotal.WithLabelValues(string(req.Scope)).Inc()

	return &ArticlePage{
		Items: NewArticleList(list),
		Pagination: Pagination{
			Current: page,
			Limit:   pager.GetLimit(),
			Total:   total,
		},
	}, nil
}
