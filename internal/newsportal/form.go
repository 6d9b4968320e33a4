package newsportal

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/article-publisher/internal/event"
)

type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindLongText FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindSubmit   FieldKind = "submit"
)

// FieldFormat adds a shape check on top of the required flag during validation.
type FieldFormat string

const (
	FormatDate FieldFormat = "date"
	FormatInt  FieldFormat = "int"
	FormatURL  FieldFormat = "url"
	FormatBool FieldFormat = "bool"
)

const DateLayout = "2006-01-02"

const (
	FieldID               = "id"
	FieldTitle            = "title"
	FieldSlug             = "slug"
	FieldSummary          = "summary"
	FieldContent          = "content"
	FieldPublishDate      = "publish_date"
	FieldAuthorID         = "author_id"
	FieldUserID           = "user_id"
	FieldCategoryID       = "category_id"
	FieldUseInEmail       = "use_in_email"
	FieldImageID          = "image_id"
	FieldGuestAuthorName  = "guest_author_name"
	FieldGuestCompanyName = "guest_company_name"
	FieldGuestCompanyURL  = "guest_company_url"
	FieldSubmit           = "submit"
)

// Values holds raw form values keyed by field key.
type Values map[string]string

func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

type Option struct {
	Value string
	Label string
}

// FormField is one schema item. Class is an opaque style tag for the renderer.
type FormField struct {
	Key      string
	Label    string
	Kind     FieldKind
	Format   FieldFormat
	Required bool
	Value    string
	Options  []Option
	Class    string
	Rows     int
}

type Form struct {
	Scope  Scope
	Mode   Mode
	Fields []FormField
	Values Values
}

func (f *Form) Field(key string) (*FormField, bool) {
	for i := range f.Fields {
		if f.Fields[i].Key == key {
			return &f.Fields[i], true
		}
	}
	return nil, false
}

func (f *Form) Add(fields ...FormField) {
	for _, field := range fields {
		f.Fields = append(f.Fields, cloneField(field))
	}
}

// InsertAfter places fields right after the field with the given key.
// It reports false and leaves the form untouched when the key is missing.
func (f *Form) InsertAfter(key string, fields ...FormField) bool {
	for i := range f.Fields {
		if f.Fields[i].Key != key {
			continue
		}

		tail := append([]FormField(nil), f.Fields[i+1:]...)
		f.Fields = f.Fields[:i+1]
		f.Add(fields...)
		f.Fields = append(f.Fields, tail...)
		return true
	}
	return false
}

func (f *Form) Remove(key string) bool {
	for i := range f.Fields {
		if f.Fields[i].Key == key {
			f.Fields = append(f.Fields[:i], f.Fields[i+1:]...)
			return true
		}
	}
	return false
}

// Keys returns field keys in render order.
func (f *Form) Keys() []string {
	keys := make([]string, len(f.Fields))
	for i := range f.Fields {
		keys[i] = f.Fields[i].Key
	}
	return keys
}

func (f *Form) setValues(values Values) {
	f.Values = values
	for i := range f.Fields {
		if f.Fields[i].Kind == KindSubmit {
			continue
		}
		f.Fields[i].Value = values[f.Fields[i].Key]
	}
}

type FormBuilder struct {
	repo Repository
	bus  *event.Bus
	now  func() time.Time
}

func NewFormBuilder(repo Repository, bus *event.Bus) *FormBuilder {
	return &FormBuilder{
		repo: repo,
		bus:  bus,
		now:  time.Now,
	}
}

// Build assembles the form of a scope in a fixed order, hands it to the <scope>Form
// hook and appends the submit action last. current is never modified.
func (b *FormBuilder) Build(ctx context.Context, scope Scope, mode Mode, actorID int, current Values) (*Form, error) {
	variant, err := LookupVariant(scope)
	if err != nil {
		return nil, err
	}

	values := current.Clone()
	form := &Form{Scope: scope, Mode: mode}

	form.Add(FormField{Key: FieldTitle, Label: "Title", Kind: KindText, Required: true})

	values[FieldPublishDate] = normalizeDate(values[FieldPublishDate], b.now())
	form.Add(FormField{
		Key:    FieldPublishDate,
		Label:  "Published Date",
		Kind:   KindText,
		Format: FormatDate,
		Class:  "sa-datepicker",
	})

	form.Add(
		FormField{Key: FieldSummary, Label: "Summary (optional)", Kind: KindLongText, Rows: 5},
		FormField{Key: FieldContent, Label: "Content", Kind: KindLongText, Required: true, Class: "ckeditor advanced"},
	)

	users, err := b.repo.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	if values[FieldAuthorID] == "" {
		if userID := values[FieldUserID]; userID != "" {
			values[FieldAuthorID] = userID
		} else {
			values[FieldAuthorID] = itoa(actorID)
		}
	}

	form.Add(FormField{
		Key:     FieldAuthorID,
		Label:   "Author",
		Kind:    KindSelect,
		Format:  FormatInt,
		Options: NewUsers(users).Options(),
		Class:   "select2",
	})
	form.Add(variant.AuthorFields...)

	categories, err := b.repo.CategoriesByScope(ctx, string(scope))
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	form.Add(FormField{
		Key:     FieldCategoryID,
		Label:   "Category",
		Kind:    KindSelect,
		Format:  FormatInt,
		Options: NewCategories(categories).Options(),
		Class:   "select2",
	})
	form.Add(variant.CategoryFields...)

	form.Add(FormField{Key: FieldImageID, Label: "Image", Kind: KindText, Class: "octo-image-picker"})

	evt := &FormEvent{Scope: scope, Mode: mode, Form: form, Values: values}
	if err := b.bus.Trigger(ctx, variant.FormEvent(), evt); err != nil {
		return nil, fmt.Errorf("form hook: %w", err)
	}

	form = evt.Form
	values = evt.Values
	if values == nil {
		values = Values{}
	}

	form.Add(FormField{
		Key:   FieldSubmit,
		Kind:  KindSubmit,
		Value: "Save " + variant.ArticleType,
		Class: "btn-success",
	})
	form.setValues(values)

	return form, nil
}

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// normalizeDate returns today for an empty value, the YYYY-MM-DD form of a
// parseable value and the raw value otherwise, leaving rejection to validation.
func normalizeDate(raw string, now time.Time) string {
	if raw == "" {
		return now.Format(DateLayout)
	}

	if t, ok := parseDate(raw); ok {
		return t.Format(DateLayout)
	}

	return raw
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func cloneField(f FormField) FormField {
	if f.Options != nil {
		f.Options = append([]Option(nil), f.Options...)
	}
	return f
}
