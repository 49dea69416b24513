package domain

import "errors"

// Sentinel domain errors. Messages are part of the API contract and surface
// verbatim in error responses, so they are matched with errors.Is rather
// than string comparison.
var (
	ErrInsufficientFunds      = errors.New("Insufficient funds")
	ErrAccountInactive        = errors.New("Account is not active")
	ErrAccountNotFound        = errors.New("Account not found")
	ErrSourceAccountNotFound  = errors.New("Source account not found")
	ErrDestinationNotFound    = errors.New("Destination account not found")
	ErrNegativeInitialDeposit = errors.New("Initial deposit cannot be negative")
)

// ValidationError reports malformed or out-of-range input. The message is
// returned to the caller as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a message in a ValidationError.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
