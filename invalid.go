package dynschema

import (
	"fmt"
	"strings"
)

// Invalid describes a single validation failure as produced by a validator:
// a stable numeric code, a human-readable message, and an optional structured
// payload (e.g. {"min": 4}). The failing field path is deliberately absent;
// it is resolved by the Context at the moment the failure is recorded.
type Invalid struct {
	Code int            `json:"code"`
	Err  string         `json:"err"`
	Data map[string]any `json:"data,omitempty"`
}

// InvalidField is an Invalid annotated with the resolved field path.
// Field is empty for failures recorded at the root value.
type InvalidField struct {
	Invalid
	Field string `json:"field,omitempty"`
}

// Invalids is the ordered collection of failures from one validation run.
// It implements the error interface so a whole run can bubble up as a single
// error value.
type Invalids []InvalidField

// Error implements the error interface.
func (iv Invalids) Error() string {
	if len(iv) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, inv := range iv {
		if inv.Field == "" {
			parts = append(parts, inv.Err)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", inv.Field, inv.Err))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has checks if a field has any recorded failures.
func (iv Invalids) Has(field string) bool {
	for _, inv := range iv {
		if inv.Field == field {
			return true
		}
	}
	return false
}

// Get returns the failure messages recorded for a field.
func (iv Invalids) Get(field string) []string {
	var messages []string
	for _, inv := range iv {
		if inv.Field == field {
			messages = append(messages, inv.Err)
		}
	}
	return messages
}

// On returns the full failure entries recorded for a field.
func (iv Invalids) On(field string) []InvalidField {
	var matched []InvalidField
	for _, inv := range iv {
		if inv.Field == field {
			matched = append(matched, inv)
		}
	}
	return matched
}

// Fields returns the distinct field paths in recording order.
func (iv Invalids) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, inv := range iv {
		if !seen[inv.Field] {
			fields = append(fields, inv.Field)
			seen[inv.Field] = true
		}
	}
	return fields
}

// IsEmpty returns true if there are no recorded failures.
func (iv Invalids) IsEmpty() bool {
	return len(iv) == 0
}

func invalidRequired() Invalid {
	return Invalid{Code: CodeRequired, Err: "field is required"}
}
