package errors

import (
	"fmt"
	"strings"
)

// ValidationBuilder collects field errors for Config.Validate methods and
// request checks. Build returns nil or a single InvalidArgument error whose
// message lists the fields in the order they were reported.
type ValidationBuilder struct {
	fields []string
	byName map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{byName: make(map[string][]string)}
}

// Field reports a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, seen := vb.byName[field]; !seen {
		vb.fields = append(vb.fields, field)
	}
	vb.byName[field] = append(vb.byName[field], message)
	return vb
}

// Fieldf reports a formatted problem with field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField reports a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField reports an unusable field value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when nothing was reported
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	parts := make([]string, len(vb.fields))
	meta := make(map[string]any, len(vb.fields))
	for i, field := range vb.fields {
		msgs := vb.byName[field]
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(msgs, ", "))

		list := make([]any, len(msgs))
		for j, m := range msgs {
			list[j] = m
		}
		meta[field] = list
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", meta)
}

// ValidateRequired reports field when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}
