// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. This prevents the accidental leakage of
// connection strings, tokens, passwords and email addresses that may be
// embedded in error messages coming back from the driver or the auth layer.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

// Precompiled regex patterns
var (
	// Database connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)(mongodb(\+srv)?|postgres|mysql)://[^@\s]+@`)

	// Password-looking key/value fragments
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// JWT tokens: three base64url segments starting with the standard header
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	out := dbConnRegex.ReplaceAllString(input, RedactedCredentialPlaceholder+"@")
	out = passwordRegex.ReplaceAllString(out, "$1$2"+RedactedCredentialPlaceholder)
	out = jwtTokenRegex.ReplaceAllString(out, RedactedTokenPlaceholder)
	out = emailRegex.ReplaceAllString(out, RedactedEmailPlaceholder)
	return out
}

// Error redacts sensitive information from an error's message.
// Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
