package rpc

import "github.com/daniilsolovey/article-publisher/internal/newsportal"

func NewArticleSummaries(in newsportal.ArticleList) []ArticleSummary {
	return Map(in, NewArticleSummary)
}
