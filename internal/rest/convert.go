package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/article-publisher/internal/newsportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticleSummary(a newsportal.Article) ArticleSummary {
	summary := ArticleSummary{
		ArticleID:   a.ID,
		Scope:       a.Scope,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		PublishDate: a.PublishDate.Format(newsportal.DateLayout),
		CategoryID:  a.CategoryID,
		AuthorID:    a.AuthorID,
		ImageID:     a.ImageID,
	}

	if a.Category != nil {
		category := NewCategory(*a.Category)
		summary.Category = &category
	}

	return summary
}

func NewArticle(a newsportal.Article) Article {
	return Article{
		ArticleSummary:   NewArticleSummary(a),
		Content:          a.Body,
		ContentItemID:    a.ContentItemID,
		UserID:           a.UserID,
		UseInEmail:       a.UseInEmail,
		GuestAuthorName:  a.GuestAuthorName,
		GuestCompanyName: a.GuestCompanyName,
		GuestCompanyURL:  a.GuestCompanyURL,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID: c.ID,
		Name:       c.Name,
	}
}

func NewArticlePage(p *newsportal.ArticlePage) ArticlePage {
	return ArticlePage{
		Items: NewArticleSummaries(p.Items),
		Pagination: Pagination{
			Current: p.Pagination.Current,
			Limit:   p.Pagination.Limit,
			Total:   p.Pagination.Total,
		},
	}
}

func NewFormField(f newsportal.FormField) FormField {
	return FormField{
		Key:      f.Key,
		Label:    f.Label,
		Type:     string(f.Kind),
		Required: f.Required,
		Value:    f.Value,
		Options:  Map(f.Options, NewOption),
		Class:    f.Class,
		Rows:     f.Rows,
	}
}

func NewOption(o newsportal.Option) Option {
	return Option{
		Value: o.Value,
		Label: o.Label,
	}
}

// NewForm converts a built form. articleID is used for the edit action only.
func NewForm(f *newsportal.Form, articleID int) Form {
	form := Form{
		Scope:  string(f.Scope),
		Mode:   string(f.Mode),
		Action: articlesURL(f.Scope),
		Method: http.MethodPost,
		Fields: Map(f.Fields, NewFormField),
		Values: f.Values,
	}

	if f.Mode == newsportal.ModeEdit {
		form.Action = articleURL(f.Scope, articleID)
		form.Method = http.MethodPut
	}

	return form
}

// NewValues flattens a decoded JSON object into form values. Numbers and
// booleans are accepted for convenience, nested values are rejected.
func NewValues(in map[string]interface{}) (newsportal.Values, error) {
	values := make(newsportal.Values, len(in))
	for key, raw := range in {
		switch v := raw.(type) {
		case nil:
			values[key] = ""
		case string:
			values[key] = v
		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			values[key] = "0"
			if v {
				values[key] = "1"
			}
		default:
			return nil, fmt.Errorf("field %q must be a scalar", key)
		}
	}

	return values, nil
}

func articlesURL(scope newsportal.Scope) string {
	return apiV1Prefix + "/" + string(scope) + "/articles"
}

func articleURL(scope newsportal.Scope, articleID int) string {
	return articlesURL(scope) + "/" + strconv.Itoa(articleID)
}
