// Package errors provides standardized error handling for the document engine.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input validation errors: surfaced synchronously, nothing is created.
	ErrCodeUnsupportedFileType      ErrorCode = "UNSUPPORTED_FILE_TYPE"
	ErrCodeInterviewValidationError ErrorCode = "INTERVIEW_VALIDATION_FAILED"
	ErrCodeDocumentNotFound         ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrCodeInvalidStateTransition   ErrorCode = "INVALID_STATE_TRANSITION"

	// Transport errors: always recovered locally, logged only.
	ErrCodeRemoteAnalysisFailed   ErrorCode = "REMOTE_ANALYSIS_FAILED"
	ErrCodeRemoteGenerationFailed ErrorCode = "REMOTE_GENERATION_FAILED"
	ErrCodeRemoteTimeout          ErrorCode = "REMOTE_TIMEOUT"
	ErrCodeRemoteResponseInvalid  ErrorCode = "REMOTE_RESPONSE_INVALID"
	ErrCodePersistFailed          ErrorCode = "PERSIST_FAILED"

	// Supporting infrastructure errors: best-effort paths, never fatal.
	ErrCodeArchiveInsertFailed    ErrorCode = "ARCHIVE_INSERT_FAILED"
	ErrCodeAuditIndexFailed       ErrorCode = "AUDIT_INDEX_FAILED"
	ErrCodeCacheUnavailable       ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Classification
// ==========================

// Category buckets error codes into the two classes the engine distinguishes:
// validation errors stop the operation, transport errors degrade to a local
// fallback and are only logged.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryTransport  Category = "transport"
	CategoryInternal   Category = "internal"
)

var categories = map[ErrorCode]Category{
	ErrCodeUnsupportedFileType:      CategoryValidation,
	ErrCodeInterviewValidationError: CategoryValidation,
	ErrCodeDocumentNotFound:         CategoryValidation,
	ErrCodeInvalidStateTransition:   CategoryValidation,

	ErrCodeRemoteAnalysisFailed:   CategoryTransport,
	ErrCodeRemoteGenerationFailed: CategoryTransport,
	ErrCodeRemoteTimeout:          CategoryTransport,
	ErrCodeRemoteResponseInvalid:  CategoryTransport,
	ErrCodePersistFailed:          CategoryTransport,
	ErrCodeArchiveInsertFailed:    CategoryTransport,
	ErrCodeAuditIndexFailed:       CategoryTransport,
	ErrCodeCacheUnavailable:       CategoryTransport,
	ErrCodeNotificationSendFailed: CategoryTransport,
}

// GetErrorCategory returns the category for a code, defaulting to internal.
func GetErrorCategory(code ErrorCode) Category {
	if c, ok := categories[code]; ok {
		return c
	}
	return CategoryInternal
}

// IsRecoverable reports whether the error belongs to the transport class,
// i.e. the caller must degrade to a local result instead of propagating.
func IsRecoverable(err error) bool {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return false
	}
	return GetErrorCategory(stdErr.Code) == CategoryTransport
}

// ==========================
// 3. Error Constructors
// ==========================

// NewUnsupportedFileTypeError creates a non-retryable upload rejection error.
func NewUnsupportedFileTypeError(filename, mimeType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedFileType,
		Message:   "File type is not supported for upload",
		Details:   fmt.Sprintf("filename: %s, mimeType: %s", filename, mimeType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInterviewValidationError creates a non-retryable interview answer error.
func NewInterviewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInterviewValidationError,
		Message:   "Interview answers failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDocumentNotFoundError creates a non-retryable lookup error.
func NewDocumentNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentNotFound,
		Message:   "Uploaded document not found",
		Details:   fmt.Sprintf("documentId: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidStateTransitionError creates a non-retryable workflow state error.
func NewInvalidStateTransitionError(id, from, requested string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidStateTransition,
		Message:   "Operation not valid in current document state",
		Details:   fmt.Sprintf("documentId: %s, state: %s, requested: %s", id, from, requested),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteAnalysisFailedError creates a retryable remote analyzer error.
func NewRemoteAnalysisFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteAnalysisFailed,
		Message:   "Remote analysis service error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteGenerationFailedError creates a retryable remote generator error.
func NewRemoteGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteGenerationFailed,
		Message:   "Remote generation service error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteTimeoutError creates a retryable remote timeout error.
func NewRemoteTimeoutError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteTimeout,
		Message:   "Remote service timeout",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteResponseInvalidError creates a non-retryable payload error. The
// caller falls back locally instead of retrying a broken backend.
func NewRemoteResponseInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteResponseInvalid,
		Message:   "Remote service returned a malformed payload",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPersistFailedError creates a retryable persistence error.
func NewPersistFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePersistFailed,
		Message:   "Persist to module store failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewArchiveInsertFailedError creates a retryable archive insert error.
func NewArchiveInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeArchiveInsertFailed,
		Message:   "Local archive insert failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuditIndexFailedError creates a retryable audit index error.
func NewAuditIndexFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuditIndexFailed,
		Message:   "Audit index write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Analysis cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
