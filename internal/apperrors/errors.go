package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for malformed input, e.g. a non-numeric amount.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned for an unknown request or payment id.
	ErrNotFound = errors.New("not found")

	// ErrAlreadySettled means a concurrent attempt already transitioned the
	// target. It is a benign outcome, not a failure.
	ErrAlreadySettled = errors.New("already processed")

	// ErrConfiguration means vendor credentials are missing or empty. It is
	// raised before any network call is attempted.
	ErrConfiguration = errors.New("casino configuration error")

	// ErrUnknownBookmaker is returned for a bookmaker key with no adapter.
	ErrUnknownBookmaker = errors.New("unknown bookmaker")
)

// VendorError carries a vendor-reported failure: a non-2xx HTTP status or an
// explicit error in the response body. The message is persisted to the
// request's casino_error column and returned to the caller.
type VendorError struct {
	Bookmaker string
	Message   string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Bookmaker, e.Message)
}

func NewVendorError(bookmaker, message string) *VendorError {
	return &VendorError{Bookmaker: bookmaker, Message: message}
}

// Validation wraps ErrValidation with a reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Configuration wraps ErrConfiguration with the offending field.
func Configuration(bookmaker, field string) error {
	return fmt.Errorf("%w: %s: missing %s", ErrConfiguration, bookmaker, field)
}
