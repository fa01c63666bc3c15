package handler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrymomot/targetform/pkg/validator"
)

// ValidationError maps field names to messages.
type ValidationError url.Values

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Add appends a message for field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// FromValidator converts validator errors, keeping their order per field.
func FromValidator(errs validator.ValidationErrors) ValidationError {
	out := make(ValidationError, len(errs))
	for _, err := range errs {
		out.Add(err.Field, err.Message)
	}
	return out
}
