package newsportal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var notBlank = regexp.MustCompile(`\S`)

// Validate checks the form values against its fields. Fields a hook added are
// checked like built-in ones; values without a field are ignored.
// On failure the returned error wraps ErrValidationFailed and validation.Errors.
func (f *Form) Validate() error {
	values := make(map[string]interface{}, len(f.Values))
	for k, v := range f.Values {
		values[k] = v
	}

	keys := make([]*validation.KeyRules, 0, len(f.Fields))
	for i := range f.Fields {
		field := &f.Fields[i]
		if field.Kind == KindSubmit {
			continue
		}

		key := validation.Key(field.Key, field.rules()...)
		if !field.Required {
			key = key.Optional()
		}
		keys = append(keys, key)
	}

	err := validation.Validate(values, validation.Map(keys...).AllowExtraKeys())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return nil
}

func (f *FormField) rules() []validation.Rule {
	var rules []validation.Rule
	if f.Required {
		rules = append(rules,
			validation.Required.Error("is required"),
			validation.Match(notBlank).Error("cannot be blank"),
		)
	}

	switch f.Format {
	case FormatDate:
		rules = append(rules, validation.Date(DateLayout).Error("must be a date in YYYY-MM-DD format"))
	case FormatInt:
		rules = append(rules,
			is.Int.Error("must be an integer"),
			validation.By(fitsInt),
		)
	case FormatURL:
		rules = append(rules, is.URL.Error("must be a valid URL"))
	case FormatBool:
		rules = append(rules, validation.In("0", "1").Error("must be 0 or 1"))
	}

	if f.Kind == KindSelect && len(f.Options) > 0 {
		allowed := make([]interface{}, len(f.Options))
		for i, o := range f.Options {
			allowed[i] = o.Value
		}
		rules = append(rules, validation.In(allowed...).Error("must be one of the listed options"))
	}

	return rules
}

// fitsInt rejects integers the storage cannot hold.
func fitsInt(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("is out of range")
	}
	return nil
}

// FieldErrors extracts per-field messages from a validation failure.
func FieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for key, e := range verrs {
		out[key] = e.Error()
	}
	return out
}
