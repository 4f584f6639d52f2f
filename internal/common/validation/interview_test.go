package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grc-docengine/internal/catalog"
)

func dpiaAnswers() map[string]string {
	return map[string]string{
		"title":              "DPIA HR System",
		"summary":            "Assessment of the new HR system",
		"processing_purpose": "Payroll administration",
		"data_categories":    "Employee identity and salary data",
		"dpo_consulted":      "yes",
	}
}

func TestValidateAnswers_ValidDPIA(t *testing.T) {
	result := ValidateAnswers(catalog.ModuleDPIA, dpiaAnswers())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateAnswers_RequiredFieldMissing(t *testing.T) {
	answers := dpiaAnswers()
	delete(answers, "title")
	answers["summary"] = "   "

	result := ValidateAnswers(catalog.ModuleDPIA, answers)

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 2)
	for _, e := range result.Errors {
		assert.Equal(t, "REQUIRED_FIELD_MISSING", e.Code)
	}
}

func TestValidateAnswers_SelectOption(t *testing.T) {
	answers := dpiaAnswers()
	answers["dpo_consulted"] = "maybe"

	result := ValidateAnswers(catalog.ModuleDPIA, answers)

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "dpo_consulted", result.Errors[0].Field)
	assert.Equal(t, "INVALID_OPTION", result.Errors[0].Code)
}

func TestValidateAnswers_DateFormat(t *testing.T) {
	answers := map[string]string{
		"title":        "DSR Request",
		"summary":      "Access request from data subject",
		"request_type": "access",
		"due_date":     "31-12-2025",
	}

	result := ValidateAnswers(catalog.ModuleDSR, answers)

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "due_date", result.Errors[0].Field)
	assert.Equal(t, "INVALID_DATE", result.Errors[0].Code)

	answers["due_date"] = "2025-12-31"
	assert.True(t, ValidateAnswers(catalog.ModuleDSR, answers).Valid)
}

func TestValidateAnswers_OptionalFieldsMaySkip(t *testing.T) {
	// owner, details and content are optional; absence is fine.
	result := ValidateAnswers(catalog.ModulePolicy, map[string]string{
		"title":   "Information Security Policy",
		"summary": "Top level policy",
	})
	assert.True(t, result.Valid)
}

func TestValidateAnswers_UnknownKeysIgnored(t *testing.T) {
	answers := dpiaAnswers()
	answers["ui_only_field"] = "whatever"
	assert.True(t, ValidateAnswers(catalog.ModuleDPIA, answers).Valid)
}

func TestValidateAnswers_UnknownModuleUsesPolicySchema(t *testing.T) {
	result := ValidateAnswers(catalog.ModuleType("nope"), map[string]string{})
	assert.False(t, result.Valid)
}

func TestDescribe_JoinsErrors(t *testing.T) {
	result := ValidateAnswers(catalog.ModuleDPIA, map[string]string{})
	desc := result.Describe()
	assert.Contains(t, desc, "title: required field missing")
	assert.Contains(t, desc, "; ")

	valid := &ValidationResult{Valid: true}
	assert.Empty(t, valid.Describe())
}
