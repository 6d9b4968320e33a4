package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/urlstruct"
)

const codeUniqueViolation = "23505"

// ErrConflict is returned when an insert-only write hits an existing primary key.
var ErrConflict = errors.New("row already exists")

// ArticleFilter describes which articles a listing query matches.
// Scope is always applied, CategoryID only when set.
type ArticleFilter struct {
	Scope      string
	CategoryID *int
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}

	return nil
}

// ContentItemByID returns nil, nil when no content item has the given hash.
func (r *Repository) ContentItemByID(ctx context.Context, id string) (*ContentItem, error) {
	item := &ContentItem{}
	err := r.db.ModelContext(ctx, item).
		Where(`"t"."contentItemId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get content item by id: %w", err)
	}

	return item, nil
}

// InsertContentItem never overwrites an existing row. If a row with the same
// hash is already stored, ErrConflict is returned.
func (r *Repository) InsertContentItem(ctx context.Context, item *ContentItem) error {
	res, err := r.db.ModelContext(ctx, item).
		OnConflict(`("contentItemId") DO NOTHING`).
		Insert()

	if isUniqueViolation(err) {
		return ErrConflict
	} else if err != nil {
		return fmt.Errorf("failed to insert content item: %w", err)
	}

	if res.RowsAffected() == 0 {
		return ErrConflict
	}

	return nil
}

func (r *Repository) ArticleByID(ctx context.Context, articleID int) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation(Columns.Article.Category).
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) InsertArticle(ctx context.Context, article *Article) error {
	if _, err := r.db.ModelContext(ctx, article).Insert(); err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article *Article) error {
	res, err := r.db.ModelContext(ctx, article).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	if res.RowsAffected() == 0 {
		return fmt.Errorf("failed to update article %d: %w", article.ID, pg.ErrNoRows)
	}

	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, article *Article) error {
	if _, err := r.db.ModelContext(ctx, article).WherePK().Delete(); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

// Articles returns one page of articles matching the filter, newest publish date first.
// The category is loaded via relation, content is not.
func (r *Repository) Articles(ctx context.Context, filter ArticleFilter, pager *urlstruct.Pager) ([]Article, error) {
	var articles []Article
	query := r.db.ModelContext(ctx, &articles).
		Relation(Columns.Article.Category)

	query = applyArticleFilter(query, filter)

	err := query.
		OrderExpr(`"t"."publishDate" DESC, "t"."articleId" DESC`).
		Limit(pager.GetLimit()).
		Offset(pager.GetOffset()).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error) {
	query := r.db.ModelContext(ctx, (*Article)(nil))
	query = applyArticleFilter(query, filter)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

func (r *Repository) CategoriesByScope(ctx context.Context, scope string) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		Where(`"t"."scope" = ?`, scope).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.ModelContext(ctx, &users).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return users, nil
}

func applyArticleFilter(query *pg.Query, filter ArticleFilter) *pg.Query {
	query = query.Where(`"t"."scope" = ?`, filter.Scope)

	if filter.CategoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *filter.CategoryID)
	}

	return query
}

func isUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == codeUniqueViolation
	}

	return false
}
