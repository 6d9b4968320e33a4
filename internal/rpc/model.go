package rpc

import (
	"time"
)

type Category struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
}

type ArticleSummary struct {
	ArticleID   int       `json:"articleId"`
	Scope       string    `json:"scope"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     string    `json:"summary"`
	PublishDate string    `json:"publishDate"`
	CategoryID  *int      `json:"categoryId,omitempty"`
	AuthorID    *int      `json:"authorId,omitempty"`
	ImageID     *string   `json:"imageId,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

type Article struct {
	ArticleSummary

	Content          string    `json:"content,omitempty"`
	ContentItemID    string    `json:"contentItemId"`
	UserID           int       `json:"userId"`
	UseInEmail       bool      `json:"useInEmail"`
	GuestAuthorName  *string   `json:"guestAuthorName,omitempty"`
	GuestCompanyName *string   `json:"guestCompanyName,omitempty"`
	GuestCompanyURL  *string   `json:"guestCompanyUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ArticlePage struct {
	Items []ArticleSummary `json:"items"`
	//current page number (1-based)
	Current int `json:"current"`
	//limit page size
	Limit int `json:"limit"`
	//total number of matching articles
	Total int `json:"total"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormField struct {
	Key      string   `json:"key"`
	Label    string   `json:"label,omitempty"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Value    string   `json:"value"`
	Options  []Option `json:"options,omitempty"`
}

type Form struct {
	Scope  string            `json:"scope"`
	Mode   string            `json:"mode"`
	Fields []FormField       `json:"fields"`
	Values map[string]string `json:"values"`
}

type Result struct {
	Message string   `json:"message"`
	Article *Article `json:"article,omitempty"`
}
