package rest

import "time"

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
	CategoryID  *int      `json:"categoryId"`
	AuthorID    *int      `json:"authorId"`
	ImageID     *string   `json:"imageId"`
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

type Pagination struct {
	Current int `json:"current"`
	Limit   int `json:"limit"`
	Total   int `json:"total"`
}

type ArticlePage struct {
	Items      []ArticleSummary `json:"items"`
	Pagination Pagination       `json:"pagination"`
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
	Class    string   `json:"class,omitempty"`
	Rows     int      `json:"rows,omitempty"`
}

// Form is a renderable form schema. Action and Method depend on the mode only.
type Form struct {
	Scope  string            `json:"scope"`
	Mode   string            `json:"mode"`
	Action string            `json:"action"`
	Method string            `json:"method"`
	Fields []FormField       `json:"fields"`
	Values map[string]string `json:"values"`
}

type Result struct {
	Message string   `json:"message"`
	Article *Article `json:"article,omitempty"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
