package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/event"
	"github.com/daniilsolovey/article-publisher/internal/metrics"
)

type PublishRequest struct {
	Scope Scope
	Mode  Mode
	// Existing is the loaded article for ModeEdit and is never modified.
	Existing *db.Article
	// Fields are the submitted values. In ModeEdit absent keys keep the stored value.
	Fields  Values
	ActorID int
}

// Publisher runs the save pipeline: validate, resolve content, derive fields,
// trigger hooks and persist.
type Publisher struct {
	repo    Repository
	content *ContentStore
	forms   *FormBuilder
	bus     *event.Bus
	log     *slog.Logger
	now     func() time.Time
}

func NewPublisher(repo Repository, content *ContentStore, forms *FormBuilder, bus *event.Bus, log *slog.Logger) *Publisher {
	return &Publisher{
		repo:    repo,
		content: content,
		forms:   forms,
		bus:     bus,
		log:     log,
		now:     time.Now,
	}
}

// Publish adds or edits an article. Errors are ErrUnknownScope, ErrNotFound,
// ErrValidationFailed (wrapping the field errors) or a bare ErrPublishFailed.
func (p *Publisher) Publish(ctx context.Context, req PublishRequest) (*Article, error) {
	start := time.Now()
	article, err := p.publish(ctx, req)

	scope, mode := scopeLabel(req.Scope), modeLabel(req.Mode)
	metrics.PublishTotal.WithLabelValues(scope, mode, resultLabel(err)).Inc()
	metrics.PublishDuration.WithLabelValues(scope, mode).Observe(time.Since(start).Seconds())

	return article, err
}

func (p *Publisher) publish(ctx context.Context, req PublishRequest) (*Article, error) {
	variant, err := LookupVariant(req.Scope)
	if err != nil {
		return nil, err
	}

	switch req.Mode {
	case ModeAdd:
	case ModeEdit:
		if req.Existing == nil {
			return nil, ErrNotFound
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrValidationFailed, req.Mode)
	}

	fields := req.Fields
	if req.Mode == ModeEdit {
		stored, err := p.content.BodyOf(ctx, req.Existing)
		if err != nil {
			return nil, p.fail(ctx, req, "load stored body", err)
		}

		fields = articleValues(req.Existing, stored)
		for k, v := range req.Fields {
			fields[k] = v
		}
	}

	form, err := p.forms.Build(ctx, req.Scope, req.Mode, req.ActorID, fields)
	if err != nil {
		return nil, p.fail(ctx, req, "build form", err)
	}

	if err := form.Validate(); err != nil {
		p.log.InfoContext(ctx, "article rejected", "scope", req.Scope, "mode", req.Mode, "error", err)
		return nil, err
	}

	values := form.Values
	body := values[FieldContent]
	item, err := p.content.GetOrCreate(ctx, body)
	if err != nil {
		return nil, p.fail(ctx, req, "resolve content", err)
	}

	now := p.now()
	article := &Article{Body: body}
	if req.Mode == ModeEdit {
		article.Article = *req.Existing
		article.Article.Category = nil
	} else {
		article.Scope = string(req.Scope)
		article.CreatedAt = now
	}

	if err := assignFields(&article.Article, values); err != nil {
		return nil, p.fail(ctx, req, "assign fields", err)
	}

	article.UserID = req.ActorID
	article.UpdatedAt = now
	article.ContentItemID = item.ID

	if article.AuthorID == nil {
		actorID := req.ActorID
		article.AuthorID = &actorID
	}
	if article.PublishDate.IsZero() {
		article.PublishDate = truncateToDate(now)
	}

	summary := values[FieldSummary]
	if (req.Mode == ModeAdd && summary == "") || (req.Mode == ModeEdit && strings.TrimSpace(summary) == "") {
		article.Summary = article.GenerateSummary()
	}
	article.Slug = article.GenerateSlug(variant.ArticleType)

	evt := &ArticleEvent{Scope: req.Scope, Article: &article.Article, Body: body}
	if err := p.bus.Trigger(ctx, variant.BeforeSaveEvent(), evt); err != nil {
		return nil, p.fail(ctx, req, "before save hook", err)
	}

	if req.Mode == ModeAdd {
		err = p.repo.InsertArticle(ctx, &article.Article)
	} else {
		err = p.repo.UpdateArticle(ctx, &article.Article)
	}
	if err != nil {
		return nil, p.fail(ctx, req, "persist article", err)
	}

	if req.Mode == ModeEdit {
		p.announce(ctx, article)
	}

	p.log.InfoContext(ctx, "article saved",
		"scope", req.Scope,
		"mode", req.Mode,
		"articleId", article.ID,
		"contentItemId", article.ContentItemID,
	)

	return article, nil
}

// Delete removes the article row. Its content item is left in place.
func (p *Publisher) Delete(ctx context.Context, scope Scope, existing *db.Article) (*Article, error) {
	if _, err := LookupVariant(scope); err != nil {
		return nil, err
	}
	if existing == nil || existing.Scope != string(scope) {
		return nil, ErrNotFound
	}

	if err := p.repo.DeleteArticle(ctx, existing); err != nil {
		p.log.ErrorContext(ctx, "delete failed", "scope", scope, "articleId", existing.ID, "error", err)
		return nil, ErrPublishFailed
	}

	p.log.InfoContext(ctx, "article deleted", "scope", scope, "articleId", existing.ID)

	article := NewArticle(existing)
	return &article, nil
}

// announce emits ContentPublished after the article is committed. Indexer
// failures are logged and do not affect the saved article.
func (p *Publisher) announce(ctx context.Context, article *Article) {
	data := &ContentPublished{
		Article:   &article.Article,
		ContentID: article.ID,
		Content:   article.Title + "\n" + article.Summary + "\n" + article.Body,
	}

	if err := p.bus.Trigger(ctx, EventContentPublished, data); err != nil {
		p.log.ErrorContext(ctx, "content published hook failed", "articleId", article.ID, "error", err)
	}
}

func (p *Publisher) fail(ctx context.Context, req PublishRequest, step string, err error) error {
	p.log.ErrorContext(ctx, "publish failed",
		"step", step,
		"scope", req.Scope,
		"mode", req.Mode,
		"error", err,
	)
	return ErrPublishFailed
}

// assignFields copies the provided values onto a. Keys that are absent keep the
// current value, empty optional references become NULL.
func assignFields(a *db.Article, fields Values) error {
	if v, ok := fields[FieldTitle]; ok {
		a.Title = strings.TrimSpace(v)
	}
	if v, ok := fields[FieldSummary]; ok {
		a.Summary = v
	}

	if v, ok := fields[FieldPublishDate]; ok && v != "" {
		t, ok := parseDate(v)
		if !ok {
			return fmt.Errorf("invalid publish date %q", v)
		}
		a.PublishDate = truncateToDate(t)
	}

	var err error
	if a.AuthorID, err = optionalInt(fields, FieldAuthorID, a.AuthorID); err != nil {
		return err
	}
	if a.CategoryID, err = optionalInt(fields, FieldCategoryID, a.CategoryID); err != nil {
		return err
	}

	if v, ok := fields[FieldUseInEmail]; ok {
		a.UseInEmail = v == "1"
	}

	a.ImageID = optionalString(fields, FieldImageID, a.ImageID)
	a.GuestAuthorName = optionalString(fields, FieldGuestAuthorName, a.GuestAuthorName)
	a.GuestCompanyName = optionalString(fields, FieldGuestCompanyName, a.GuestCompanyName)
	a.GuestCompanyURL = optionalString(fields, FieldGuestCompanyURL, a.GuestCompanyURL)

	return nil
}

func optionalInt(fields Values, key string, current *int) (*int, error) {
	v, ok := fields[key]
	if !ok {
		return current, nil
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return &i, nil
}

func optionalString(fields Values, key string, current *string) *string {
	v, ok := fields[key]
	if !ok {
		return current
	}

	if v = strings.TrimSpace(v); v == "" {
		return nil
	}
	return &v
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// scopeLabel keeps metric cardinality bounded by the registered scopes.
func scopeLabel(scope Scope) string {
	if _, ok := Variants[scope]; !ok {
		return metrics.LabelUnknown
	}
	return string(scope)
}

func modeLabel(mode Mode) string {
	switch mode {
	case ModeAdd, ModeEdit:
		return string(mode)
	}
	return metrics.LabelUnknown
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrValidationFailed):
		return metrics.ResultValidation
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownScope):
		return metrics.ResultNotFound
	}
	return metrics.ResultFailed
}
