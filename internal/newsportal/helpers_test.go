package newsportal

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/event"
	"github.com/daniilsolovey/article-publisher/internal/newsportal/newsportaltest"
)

const testActorID = 1

var testNow = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestManager returns a manager over an in-memory repository seeded with
// two users, two news categories and one blog category. The clock is fixed to testNow.
func newTestManager(t *testing.T) (*Manager, *newsportaltest.Repository) {
	t.Helper()

	repo := newsportaltest.New()
	repo.AddUser(db.User{ID: 1, Name: "Alice Editor"})
	repo.AddUser(db.User{ID: 2, Name: "Bob Writer"})
	repo.AddCategory(db.Category{ID: 1, Name: "Company", Scope: string(ScopeNews)})
	repo.AddCategory(db.Category{ID: 2, Name: "Industry", Scope: string(ScopeNews)})
	repo.AddCategory(db.Category{ID: 3, Name: "Engineering", Scope: string(ScopeBlog)})

	logger := noOpLogger()
	m := NewManager(repo, event.NewBus(logger), logger)
	m.forms.now = func() time.Time { return testNow }
	m.publisher.now = func() time.Time { return testNow }

	return m, repo
}

func newsFields(title, body string) Values {
	return Values{
		FieldTitle:       title,
		FieldContent:     body,
		FieldPublishDate: "2024-02-01",
		FieldCategoryID:  "1",
		FieldUseInEmail:  "1",
	}
}

func intPtr(i int) *int {
	return &i
}
