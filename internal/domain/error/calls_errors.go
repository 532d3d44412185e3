package error

// Calls overview errors reuse the report validation sentinels
// (ErrMissingStartDate, ErrMissingEndDate, ErrInvalidDateRange,
// ErrInvalidDateFormat) since the query surface is the same.

// CallsErrorCode defines error codes for call overview errors.
// Format: CAL-XXYYYY where XX is category and YYYY is specific error.
type CallsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCallsMissingStartDate CallsErrorCode = "CAL-010001"
	ErrCodeCallsMissingEndDate   CallsErrorCode = "CAL-010002"
	ErrCodeCallsInvalidDateRange CallsErrorCode = "CAL-010003"
	ErrCodeCallsInvalidDate      CallsErrorCode = "CAL-010004"

	// Internal errors (99XXXX)
	ErrCodeCallsInternalError CallsErrorCode = "CAL-990001"
)

// CallsError represents a call overview error with code and message.
type CallsError struct {
	Code    CallsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CallsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CallsError) Unwrap() error {
	return e.Err
}

// NewCallsError creates a new CallsError with the given code and message.
func NewCallsError(code CallsErrorCode, message string, err error) *CallsError {
	return &CallsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
