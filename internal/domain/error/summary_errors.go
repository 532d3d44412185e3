// Package error defines domain-specific errors for the operations dashboard.
package error

import "errors"

// Summary domain errors.
var (
	// ErrNoSnapshot is returned when a summary is requested before any
	// snapshot has been fetched.
	ErrNoSnapshot = errors.New("no snapshot available, refresh first")

	// ErrInvalidWalletID is returned when wallet_id is not a valid integer.
	ErrInvalidWalletID = errors.New("wallet_id must be an integer")

	// ErrInvalidCategoryID is returned when category_id is not a valid integer.
	ErrInvalidCategoryID = errors.New("category_id must be an integer")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SMR-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWalletID   SummaryErrorCode = "SMR-010001"
	ErrCodeInvalidCategoryID SummaryErrorCode = "SMR-010002"

	// State errors (02XXXX)
	ErrCodeNoSnapshot SummaryErrorCode = "SMR-020001"

	// Internal errors (99XXXX)
	ErrCodeSummaryInternalError SummaryErrorCode = "SMR-990001"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
