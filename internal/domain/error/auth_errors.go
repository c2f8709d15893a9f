// Package error defines domain-specific errors for the condominium backend.
package error

import "errors"

// Authentication domain errors. Identity issuance lives outside this service;
// only token resolution errors surface here.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrNoCondominium is returned when a token carries no condominium association.
	ErrNoCondominium = errors.New("token has no condominium association")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (03XXXX)
	ErrCodeInvalidToken  AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken  AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken  AuthErrorCode = "AUTH-030003"
	ErrCodeNoCondominium AuthErrorCode = "AUTH-030004"
	ErrCodeRateLimited   AuthErrorCode = "AUTH-030005"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
