// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, Scope, Title, Slug, Summary, ContentItemID, CategoryID, AuthorID, UserID, ImageID, PublishDate, UseInEmail, GuestAuthorName, GuestCompanyName, GuestCompanyURL, CreatedAt, UpdatedAt string

		Category string
	}
	Category struct {
		ID, Name, Scope string
	}
	ContentItem struct {
		ID, Content string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	User struct {
		ID, Name string
	}
}{
	Article: struct {
		ID, Scope, Title, Slug, Summary, ContentItemID, CategoryID, AuthorID, UserID, ImageID, PublishDate, UseInEmail, GuestAuthorName, GuestCompanyName, GuestCompanyURL, CreatedAt, UpdatedAt string

		Category string
	}{
		ID:               "articleId",
		Scope:            "scope",
		Title:            "title",
		Slug:             "slug",
		Summary:          "summary",
		ContentItemID:    "contentItemId",
		CategoryID:       "categoryId",
		AuthorID:         "authorId",
		UserID:           "userId",
		ImageID:          "imageId",
		PublishDate:      "publishDate",
		UseInEmail:       "useInEmail",
		GuestAuthorName:  "guestAuthorName",
		GuestCompanyName: "guestCompanyName",
		GuestCompanyURL:  "guestCompanyUrl",
		CreatedAt:        "createdAt",
		UpdatedAt:        "updatedAt",

		Category: "Category",
	},
	Category: struct {
		ID, Name, Scope string
	}{
		ID:    "categoryId",
		Name:  "name",
		Scope: "scope",
	},
	ContentItem: struct {
		ID, Content string
	}{
		ID:      "contentItemId",
		Content: "content",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	User: struct {
		ID, Name string
	}{
		ID:   "userId",
		Name: "name",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	ContentItem struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	ContentItem: struct {
		Name, Alias string
	}{
		Name:  "content_items",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID               int       `pg:"articleId,pk"`
	Scope            string    `pg:"scope,use_zero"`
	Title            string    `pg:"title,use_zero"`
	Slug             string    `pg:"slug,use_zero"`
	Summary          string    `pg:"summary,use_zero"`
	ContentItemID    string    `pg:"contentItemId,use_zero"`
	CategoryID       *int      `pg:"categoryId"`
	AuthorID         *int      `pg:"authorId"`
	UserID           int       `pg:"userId,use_zero"`
	ImageID          *string   `pg:"imageId"`
	PublishDate      time.Time `pg:"publishDate,use_zero"`
	UseInEmail       bool      `pg:"useInEmail,use_zero"`
	GuestAuthorName  *string   `pg:"guestAuthorName"`
	GuestCompanyName *string   `pg:"guestCompanyName"`
	GuestCompanyURL  *string   `pg:"guestCompanyUrl"`
	CreatedAt        time.Time `pg:"createdAt,use_zero"`
	UpdatedAt        time.Time `pg:"updatedAt,use_zero"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID    int    `pg:"categoryId,pk"`
	Name  string `pg:"name,use_zero"`
	Scope string `pg:"scope,use_zero"`
}

type ContentItem struct {
	tableName struct{} `pg:"content_items,alias:t,discard_unknown_columns"`

	ID      string `pg:"contentItemId,pk"`
	Content string `pg:"content,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID   int    `pg:"userId,pk"`
	Name string `pg:"name,use_zero"`
}
