// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input validation errors.
	ErrInvalidAmount = errors.New("invalid amount: must be greater than zero")
	ErrInvalidMethod = errors.New("invalid payment method")

	// Consent errors.
	ErrUnknownConsent = errors.New("unknown consent setting")

	// Import errors.
	ErrUnsupportedFormat = errors.New("unsupported statement format")
	ErrNoTransactions    = errors.New("no transactions found")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsValidationError reports whether err was caused by rejected input rather
// than an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidMethod) ||
		errors.Is(err, ErrUnknownConsent)
}
