package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError maps attribute names to the reason the attribute was rejected.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() ValidationError {
	return ValidationError{Fields: map[string]string{}}
}

func (v ValidationError) Add(field, reason string) {
	if _, ok := v.Fields[field]; !ok {
		v.Fields[field] = reason
	}
}

func (v ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

func (v ValidationError) Unwrap() error {
	return BadRequest
}

func (v ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
