package form

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	MinStars = 1
	MaxStars = 9999999

	// MaxStarsDigits is the width of the stars input.
	MaxStarsDigits = 7
)

// FieldError is a single failed rule on a named input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the ordered set of field failures from one submission.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByField returns the first message per field, which is what a screen
// shows under each input.
func (e Errors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Add records msg against field unless the field already failed.
func (e *Errors) Add(field, msg string) {
	if e.Has(field) {
		return
	}
	*e = append(*e, FieldError{Field: field, Message: msg})
}

// Has reports whether field already failed.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil when nothing failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Text checks a free-text field and returns it NFC-normalised. Length is
// counted in runes of the normalised form. label is used in messages.
func Text(errs *Errors, field, label, value string, required bool, maxLen int) string {
	value = norm.NFC.String(value)
	if required && value == "" {
		errs.Add(field, label+" is required")
		return value
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		errs.Add(field, label+" must be at most "+strconv.Itoa(maxLen)+" characters")
	}
	return value
}

// Stars parses a raw stars input. Checks stop at the first failure.
func Stars(errs *Errors, field, raw string) int {
	if raw == "" {
		errs.Add(field, "Stars are required")
		return 0
	}
	if !allDigits(raw) {
		errs.Add(field, "Stars must be a number")
		return 0
	}
	// leading zeros are fine; Atoi reports overflow as an error
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinStars || n > MaxStars {
		errs.Add(field, "Stars must be between 1 and 9999999")
		return 0
	}
	return n
}

// SanitizeStars drops everything but ASCII digits and clips to the input
// width, mirroring what the stars field accepts while typing.
func SanitizeStars(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == MaxStarsDigits {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
