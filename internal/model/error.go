package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	BlockingCount int    `json:"blockingCount,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeConstraintBlocked = "CONSTRAINT_BLOCKED"
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that
// errors carrying a specific message still match the shared sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NotFoundf builds a NOT_FOUND error with a formatted message.
func NotFoundf(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf(format, args...))
}

// Invalidf builds a VALIDATION_FAILED error with a formatted message.
func Invalidf(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeValidationFailed, fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError(ErrCodeNotFound, "Resource not found")
	ErrValidationFailed  = NewDomainError(ErrCodeValidationFailed, "Validation failed")
	ErrConstraintBlocked = NewDomainError(ErrCodeConstraintBlocked, "Operation blocked by a dependent resource")
)

// CategoryInUseError is returned when a category cannot be deleted because
// products still reference it by name.
type CategoryInUseError struct {
	CategoryName  string
	BlockingCount int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("Cannot delete category %q. %d product(s) are currently using it.", e.CategoryName, e.BlockingCount)
}

// Is matches ErrConstraintBlocked.
func (e *CategoryInUseError) Is(target error) bool {
	return target == ErrConstraintBlocked
}
