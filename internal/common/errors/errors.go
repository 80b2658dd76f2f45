// internal/common/errors/errors.go
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// The matching engine itself only fails at construction time.
	ErrCodeInvalidWeightConfig ErrorCode = "INVALID_WEIGHT_CONFIG"

	ErrCodeStudentNotFound          ErrorCode = "STUDENT_NOT_FOUND"
	ErrCodeListingValidationFailed  ErrorCode = "LISTING_VALIDATION_FAILED"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeCacheUnavailable         ErrorCode = "CACHE_UNAVAILABLE"
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

// NewInvalidWeightConfigError reports a weight set rejected at engine
// construction. Never retryable: the configuration has to change.
func NewInvalidWeightConfigError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidWeightConfig,
		Message:   "Matching weight configuration rejected",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStudentNotFoundError creates a non-retryable lookup error.
func NewStudentNotFoundError(studentID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStudentNotFound,
		Message:   "Student profile not found",
		Details:   fmt.Sprintf("studentId: %s", studentID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewListingValidationFailedError creates a non-retryable record validation error.
func NewListingValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeListingValidationFailed,
		Message:   "Listing record failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", queryName, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error. Callers treat
// the cache as best-effort and fall through to the database.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Profile cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err carries a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
