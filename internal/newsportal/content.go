package newsportal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/metrics"
)

// ContentRepository is the part of the storage the content store needs.
type ContentRepository interface {
	ContentItemByID(ctx context.Context, id string) (*db.ContentItem, error)
	InsertContentItem(ctx context.Context, item *db.ContentItem) error
}

type contentEnvelope struct {
	Content string `json:"content"`
}

// ContentStore keeps every distinct body text exactly once, keyed by its hash.
type ContentStore struct {
	repo ContentRepository
	log  *slog.Logger
}

func NewContentStore(repo ContentRepository, log *slog.Logger) *ContentStore {
	return &ContentStore{
		repo: repo,
		log:  log,
	}
}

// Hash returns the hex encoded SHA-256 digest of body.
func Hash(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// EncodeContent wraps body into the stored {"content": ...} envelope.
func EncodeContent(body string) (string, error) {
	b, err := json.Marshal(contentEnvelope{Content: body})
	if err != nil {
		return "", fmt.Errorf("encode content: %w", err)
	}
	return string(b), nil
}

// Body decodes the raw body text from the stored envelope.
func (c ContentItem) Body() (string, error) {
	var env contentEnvelope
	if err := json.Unmarshal([]byte(c.Content), &env); err != nil {
		return "", fmt.Errorf("decode content item %s: %w", c.ID, err)
	}
	return env.Content, nil
}

// GetOrCreate returns the content item of body, inserting it on first use.
// An existing item is returned unchanged. A concurrent insert of the same hash
// is resolved by reading back the winning row.
func (s *ContentStore) GetOrCreate(ctx context.Context, body string) (*ContentItem, error) {
	id := Hash(body)

	existing, err := s.repo.ContentItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	} else if existing != nil {
		metrics.ContentItemsTotal.WithLabelValues(metrics.ContentHit).Inc()
		item := NewContentItem(existing)
		return &item, nil
	}

	payload, err := EncodeContent(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	created := &db.ContentItem{ID: id, Content: payload}
	err = s.repo.InsertContentItem(ctx, created)
	switch {
	case errors.Is(err, db.ErrConflict):
		metrics.ContentItemsTotal.WithLabelValues(metrics.ContentConflict).Inc()
		s.log.DebugContext(ctx, "content item inserted concurrently, reading winner", "contentItemId", id)
		return s.winner(ctx, id)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	metrics.ContentItemsTotal.WithLabelValues(metrics.ContentInserted).Inc()
	item := NewContentItem(created)
	return &item, nil
}

// Resolve returns the content item with the given hash or nil when it is missing.
func (s *ContentStore) Resolve(ctx context.Context, id string) (*ContentItem, error) {
	existing, err := s.repo.ContentItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	} else if existing == nil {
		return nil, nil
	}

	item := NewContentItem(existing)
	return &item, nil
}

// BodyOf returns the body text of a stored article. A missing content item
// yields an empty body.
func (s *ContentStore) BodyOf(ctx context.Context, article *db.Article) (string, error) {
	item, err := s.Resolve(ctx, article.ContentItemID)
	if err != nil {
		return "", fmt.Errorf("resolve content of article %d: %w", article.ID, err)
	} else if item == nil {
		return "", nil
	}

	return item.Body()
}

func (s *ContentStore) winner(ctx context.Context, id string) (*ContentItem, error) {
	item, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	} else if item == nil {
		return nil, fmt.Errorf("%w: content item %s conflicted on insert but is missing", ErrStorageFailure, id)
	}

	return item, nil
}
