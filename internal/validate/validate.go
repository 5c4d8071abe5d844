package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// FieldErrors collects validation messages keyed by external
// (camelCase) field name, the shape the API returns for 400s.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// ErrOrNil lets callers return the map directly from a validation pass.
func (e FieldErrors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e FieldErrors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "this field is required")
	}
}

func (e FieldErrors) MaxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// Email checks non-blank values against RFC 5322 address grammar.
func (e FieldErrors) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		e.Add(field, "enter a valid email address")
	}
}

// URL accepts blank (optional fields) and otherwise requires a
// well-formed absolute http(s) URL.
func (e FieldErrors) URL(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		e.Add(field, "enter a valid URL")
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		e.Add(field, "enter a valid URL")
	}
}

func (e FieldErrors) IntRange(field string, value, min, max int) {
	if value < min || value > max {
		e.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

func (e FieldErrors) IntMin(field string, value, min int) {
	if value < min {
		e.Add(field, fmt.Sprintf("must be at least %d", min))
	}
}

func (e FieldErrors) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, fmt.Sprintf("%q is not a valid choice", value))
}

func New() FieldErrors {
	return FieldErrors{}
}
