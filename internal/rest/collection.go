package rest

import "github.com/daniilsolovey/article-publisher/internal/newsportal"

func NewArticleSummaries(in newsportal.ArticleList) []ArticleSummary {
	return Map(in, NewArticleSummary)
}

func NewCategories(in newsportal.Categories) []Category {
	return Map(in, NewCategory)
}
