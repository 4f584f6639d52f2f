// Package validation checks interview answers against a module's interview
// schema before assembly. Validation failures are the synchronous input-error
// class: the caller gets them back immediately and nothing is created.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"grc-docengine/internal/catalog"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateAnswers validates an answer map against the interview schema of a
// module type. Unknown answer keys are ignored: the form may carry UI-only
// fields the engine does not consume.
func ValidateAnswers(moduleType catalog.ModuleType, answers map[string]string) *ValidationResult {
	fields := catalog.Interview(moduleType)
	errors := []ValidationError{}

	for _, field := range fields {
		value, present := answers[field.Name]
		trimmed := strings.TrimSpace(value)

		if field.Required && (!present || trimmed == "") {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: "required field missing",
				Code:    "REQUIRED_FIELD_MISSING",
			})
			continue
		}
		if !present || trimmed == "" {
			continue
		}

		if fieldErrors := validateField(field, trimmed); len(fieldErrors) > 0 {
			errors = append(errors, fieldErrors...)
		}
	}

	return &ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

func validateField(field catalog.InterviewField, value string) []ValidationError {
	errors := []ValidationError{}

	switch field.Type {
	case catalog.FieldSelect:
		if !isAllowedOption(field.Options, value) {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: fmt.Sprintf("value %q is not one of the allowed options", value),
				Code:    "INVALID_OPTION",
			})
		}
	case catalog.FieldDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: "value must be a date in YYYY-MM-DD format",
				Code:    "INVALID_DATE",
			})
		}
	case catalog.FieldNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: "value must be numeric",
				Code:    "INVALID_NUMBER",
			})
		}
	}

	return errors
}

func isAllowedOption(options []catalog.SelectOption, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Describe renders a validation result as a single details string for error
// constructors.
func (r *ValidationResult) Describe() string {
	if r.Valid {
		return ""
	}
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(parts, "; ")
}
