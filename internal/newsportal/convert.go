package newsportal

import (
	"strconv"

	"github.com/daniilsolovey/article-publisher/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewUser(u *db.User) User {
	return User{User: *u}
}

func NewContentItem(c *db.ContentItem) ContentItem {
	return ContentItem{ContentItem: *c}
}

func NewArticle(a *db.Article) Article {
	article := Article{Article: *a}

	if a.Category != nil {
		category := NewCategory(a.Category)
		article.Category = &category
	}

	return article
}

// articleValues flattens a stored article into form values.
func articleValues(a *db.Article, body string) Values {
	values := Values{
		FieldID:               itoa(a.ID),
		FieldTitle:            a.Title,
		FieldSlug:             a.Slug,
		FieldSummary:          a.Summary,
		FieldContent:          body,
		FieldPublishDate:      a.PublishDate.Format(DateLayout),
		FieldUserID:           itoa(a.UserID),
		FieldUseInEmail:       boolValue(a.UseInEmail),
		FieldImageID:          deref(a.ImageID),
		FieldGuestAuthorName:  deref(a.GuestAuthorName),
		FieldGuestCompanyName: deref(a.GuestCompanyName),
		FieldGuestCompanyURL:  deref(a.GuestCompanyURL),
	}

	if a.AuthorID != nil {
		values[FieldAuthorID] = itoa(*a.AuthorID)
	}
	if a.CategoryID != nil {
		values[FieldCategoryID] = itoa(*a.CategoryID)
	}

	return values
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
