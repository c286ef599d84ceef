package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates the email/password pair did not match.
	// Deliberately identical for unknown email and wrong password, so a
	// caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserGone indicates the token was valid but its user no longer exists
	ErrUserGone = errors.New("user for this token no longer exists")

	// ErrForbidden indicates the caller's role is not allowed for the operation
	ErrForbidden = errors.New("role not permitted for this operation")
)
