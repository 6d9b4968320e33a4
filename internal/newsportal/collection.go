package newsportal

import "github.com/daniilsolovey/article-publisher/internal/db"

type ArticleList []Article

type Categories []Category

type Users []User

func NewArticleList(in []db.Article) ArticleList {
	return Map(in, func(a db.Article) Article { return NewArticle(&a) })
}

func NewCategories(in []db.Category) Categories {
	return Map(in, func(c db.Category) Category { return NewCategory(&c) })
}

func NewUsers(in []db.User) Users {
	return Map(in, func(u db.User) User { return NewUser(&u) })
}

// IDs returns article ids in list order.
func (ll ArticleList) IDs() []int {
	ids := make([]int, len(ll))
	for i := range ll {
		ids[i] = ll[i].ID
	}
	return ids
}

// Options renders categories as select options keyed by id.
func (cc Categories) Options() []Option {
	return Map(cc, func(c Category) Option { return Option{Value: itoa(c.ID), Label: c.Name} })
}

// Options renders users as select options keyed by id.
func (uu Users) Options() []Option {
	return Map(uu, func(u User) Option { return Option{Value: itoa(u.ID), Label: u.Name} })
}

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}
