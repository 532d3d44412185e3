package error

import "errors"

// Snapshot domain errors.
var (
	// ErrUpstreamUnavailable is returned when the upstream ops API cannot
	// be reached while refreshing a snapshot.
	ErrUpstreamUnavailable = errors.New("upstream API unavailable")

	// ErrNoActiveExercise is returned when upstream reports no open
	// exercise for the current day.
	ErrNoActiveExercise = errors.New("no active exercise")
)

// SnapshotErrorCode defines error codes for snapshot errors.
// Format: SNP-XXYYYY where XX is category and YYYY is specific error.
type SnapshotErrorCode string

const (
	// Upstream errors (03XXXX)
	ErrCodeUpstreamUnavailable SnapshotErrorCode = "SNP-030001"
	ErrCodeNoActiveExercise    SnapshotErrorCode = "SNP-030002"

	// Throttling errors (04XXXX)
	ErrCodeRefreshRateLimited SnapshotErrorCode = "SNP-040001"

	// Internal errors (99XXXX)
	ErrCodeSnapshotInternalError SnapshotErrorCode = "SNP-990001"
)

// SnapshotError represents a snapshot error with code and message.
type SnapshotError struct {
	Code    SnapshotErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// NewSnapshotError creates a new SnapshotError with the given code and message.
func NewSnapshotError(code SnapshotErrorCode, message string, err error) *SnapshotError {
	return &SnapshotError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
