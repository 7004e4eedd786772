package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account is locked")
	ErrAccountDisabled    = errors.New("account is not activated")

	ErrBookNotFound = errors.New("book not found")
	ErrUserNotFound = errors.New("user not found")

	ErrAlreadyBorrowed  = errors.New("you have already borrowed this book")
	ErrNotBorrowed      = errors.New("you did not borrow this book")
	ErrReturnNotPending = errors.New("the book is not returned yet")

	ErrTokenNotFound     = errors.New("invalid activation code")
	ErrTokenExpired      = errors.New("activation code has expired, a new code has been sent")
	ErrTokenAlreadyUsed  = errors.New("activation code has already been used")
	ErrRoleNotConfigured = errors.New("default user role is not configured")
)

// PermissionError signals an ownership or shareability violation. The message
// is safe to show to the caller.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

func NewPermission(message string) *PermissionError {
	return &PermissionError{Message: message}
}

// NotificationError wraps a delivery failure that happened after the
// activation token was already persisted, so the caller can retry issuance.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("failed to deliver activation code: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
