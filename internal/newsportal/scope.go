package newsportal

import (
	"fmt"
	"strings"
)

// Scope selects one of the article-like content variants served by the engine.
type Scope string

const (
	ScopeNews Scope = "news"
	ScopeBlog Scope = "blog"
)

const EventContentPublished = "ContentPublished"

// Variant is the static description of a scope. Scope-specific form fields are
// declared here instead of being branched on inside the engine.
type Variant struct {
	Scope       Scope
	ArticleType string

	// AuthorFields are placed right after the author selector.
	AuthorFields []FormField
	// CategoryFields are placed right after the category selector.
	CategoryFields []FormField
}

var Variants = map[Scope]Variant{
	ScopeNews: {
		Scope:       ScopeNews,
		ArticleType: "Article",
		CategoryFields: []FormField{
			{
				Key:     FieldUseInEmail,
				Label:   "Publish in the email newsletter?",
				Kind:    KindSelect,
				Format:  FormatBool,
				Options: []Option{{Value: "1", Label: "Yes"}, {Value: "0", Label: "No"}},
			},
		},
	},
	ScopeBlog: {
		Scope:       ScopeBlog,
		ArticleType: "Post",
		AuthorFields: []FormField{
			{Key: FieldGuestAuthorName, Label: "Guest Author Name", Kind: KindText},
			{Key: FieldGuestCompanyName, Label: "Guest Company Name", Kind: KindText},
			{Key: FieldGuestCompanyURL, Label: "Guest Company Website URL", Kind: KindText, Format: FormatURL},
		},
	},
}

// LookupVariant returns ErrUnknownScope for anything but the registered scopes.
func LookupVariant(scope Scope) (Variant, error) {
	v, ok := Variants[scope]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}

	return v, nil
}

// BeforeSaveEvent is triggered with *ArticleEvent before an article is written.
func (v Variant) BeforeSaveEvent() string {
	return "before" + v.ArticleType + "Save"
}

// FormEvent is triggered with *FormEvent before a form is finalized.
func (v Variant) FormEvent() string {
	return string(v.Scope) + "Form"
}

// FailureMessage is the user-facing text for a failed add or edit.
func (v Variant) FailureMessage(mode Mode) string {
	verb := "adding"
	if mode == ModeEdit {
		verb = "editing"
	}

	return fmt.Sprintf("There was an error %s the %s. Please try again.", verb, strings.ToLower(v.ArticleType))
}

// SuccessMessage is the user-facing text for a completed operation.
func (v Variant) SuccessMessage(title string, action string) string {
	return fmt.Sprintf("%s was %s successfully.", title, action)
}
