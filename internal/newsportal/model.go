package newsportal

import (
	"github.com/daniilsolovey/article-publisher/internal/db"
)

type Category struct {
	db.Category
}

type User struct {
	db.User
}

type ContentItem struct {
	db.ContentItem
}

type Article struct {
	db.Article
	Category *Category

	// Body is the raw text of the linked content item, set only when it was resolved.
	Body string
}

// ArticleEvent is the payload of the before<Type>Save event.
type ArticleEvent struct {
	Scope   Scope
	Article *db.Article
	Body    string
}

// ContentPublished is the payload of the ContentPublished event consumed by indexers.
type ContentPublished struct {
	Article   *db.Article
	ContentID int
	Content   string
}

// FormEvent is the payload of the <scope>Form event. Handlers may add, remove or
// change fields and values.
type FormEvent struct {
	Scope  Scope
	Mode   Mode
	Form   *Form
	Values Values
}

type Pagination struct {
	Current int
	Limit   int
	Total   int
}

type ArticlePage struct {
	Items      ArticleList
	Pagination Pagination
}
