package rpc

import "github.com/daniilsolovey/article-publisher/internal/newsportal"

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

func NewArticlePage(p *newsportal.ArticlePage) *ArticlePage {
	return &ArticlePage{
		Items:   NewArticleSummaries(p.Items),
		Current: p.Pagination.Current,
		Limit:   p.Pagination.Limit,
		Total:   p.Pagination.Total,
	}
}

func NewForm(f *newsportal.Form) *Form {
	return &Form{
		Scope:  string(f.Scope),
		Mode:   string(f.Mode),
		Fields: Map(f.Fields, NewFormField),
		Values: f.Values,
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
	}
}

func NewOption(o newsportal.Option) Option {
	return Option{
		Value: o.Value,
		Label: o.Label,
	}
}
