package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error

	// Shortfall detail, set only for insufficient balance errors
	Required  int64
	Available int64
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeValidation            = "VALIDATION_ERROR"
	ErrCodeInsufficientBalance   = "INSUFFICIENT_BALANCE"
	ErrCodeAccountNotProvisioned = "ACCOUNT_NOT_PROVISIONED"
	ErrCodeStoreUnavailable      = "STORE_UNAVAILABLE"
	ErrCodePremiumRequired       = "PREMIUM_REQUIRED"
	ErrCodeUnauthorized          = "UNAUTHORIZED"
	ErrCodeInternal              = "INTERNAL_ERROR"
	ErrCodeConflict              = "CONFLICT"
)

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewInsufficientBalanceError reports a rejected deduction. Required and
// available let the caller show the shortfall to the user.
func NewInsufficientBalanceError(required, available int64) error {
	return &DomainError{
		Code:      ErrCodeInsufficientBalance,
		Message:   fmt.Sprintf("insufficient token balance: need %d, have %d", required, available),
		Required:  required,
		Available: available,
	}
}

// AsDomainError extracts the DomainError from an error chain
func AsDomainError(err error, target **DomainError) bool {
	return errors.As(err, target)
}

// NewAccountNotProvisionedError marks the transient window between sign-up
// and account creation.
func NewAccountNotProvisionedError(userID string) error {
	return &DomainError{
		Code:    ErrCodeAccountNotProvisioned,
		Message: fmt.Sprintf("account for user %s is not provisioned yet", userID),
	}
}

// NewStoreUnavailableError wraps a transient infrastructure failure. The
// ledger never retries these internally; the caller decides.
func NewStoreUnavailableError(err error) error {
	return &DomainError{
		Code:    ErrCodeStoreUnavailable,
		Message: "balance store unavailable",
		Err:     err,
	}
}

// NewPremiumRequiredError rejects a premium-gated model for a free account
func NewPremiumRequiredError(modelID string) error {
	return &DomainError{
		Code:    ErrCodePremiumRequired,
		Message: fmt.Sprintf("model %s requires a premium account", modelID),
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// Helper functions to check error types

func codeIs(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return codeIs(err, ErrCodeNotFound)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return codeIs(err, ErrCodeValidation)
}

// IsInsufficientBalance checks if the error is an insufficient balance error
func IsInsufficientBalance(err error) bool {
	return codeIs(err, ErrCodeInsufficientBalance)
}

// IsAccountNotProvisioned checks if the error is a provisioning race error
func IsAccountNotProvisioned(err error) bool {
	return codeIs(err, ErrCodeAccountNotProvisioned)
}

// IsStoreUnavailable checks if the error is a transient store failure
func IsStoreUnavailable(err error) bool {
	return codeIs(err, ErrCodeStoreUnavailable)
}

// IsPremiumRequired checks if the error is a premium gating rejection
func IsPremiumRequired(err error) bool {
	return codeIs(err, ErrCodePremiumRequired)
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return codeIs(err, ErrCodeUnauthorized)
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	return codeIs(err, ErrCodeConflict)
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternal
}
