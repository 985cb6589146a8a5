package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeUnauthorized    ErrorCode = "AUTH-001"
	ErrCodeTokenMissing    ErrorCode = "AUTH-002"
	ErrCodeTokenMalformed  ErrorCode = "AUTH-003"
	ErrCodeSessionConflict ErrorCode = "AUTH-004"

	// API errors (API-001 to API-099)
	ErrCodeValidation ErrorCode = "API-001"
	ErrCodeServer     ErrorCode = "API-002"
	ErrCodeNotFound   ErrorCode = "API-003"
	ErrCodeDecode     ErrorCode = "API-004"

	// Network errors (NET-001 to NET-099)
	ErrCodeNetwork ErrorCode = "NET-001"
	ErrCodeTimeout ErrorCode = "NET-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeBaseURLEmpty  ErrorCode = "CONFIG-002"

	// Credential storage errors (STORE-001 to STORE-099)
	ErrCodeStorageRead  ErrorCode = "STORE-001"
	ErrCodeStorageWrite ErrorCode = "STORE-002"
)

// ClientError represents an enhanced error with code, suggestions, and documentation
type ClientError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// New creates a new ClientError
func New(code ErrorCode, message string) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ClientError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ClientError) WithSuggestion(suggestion string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ClientError) WithSuggestions(suggestions ...string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *ClientError) WithDocs(url string) *ClientError {
	e.DocsURL = url
	return e
}

// Code extracts the ErrorCode from err, or "" if err is not a ClientError.
func Code(err error) ErrorCode {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsUnauthorized reports whether err carries the Unauthorized code.
func IsUnauthorized(err error) bool {
	return Code(err) == ErrCodeUnauthorized
}

// IsValidation reports whether err carries the ValidationError code.
func IsValidation(err error) bool {
	return Code(err) == ErrCodeValidation
}

// IsNetwork reports whether err is a transport-level failure (including timeouts).
func IsNetwork(err error) bool {
	c := Code(err)
	return c == ErrCodeNetwork || c == ErrCodeTimeout
}

// IsNotFound reports whether err carries the NotFound code.
func IsNotFound(err error) bool {
	return Code(err) == ErrCodeNotFound
}

// Common error constructors for frequently used errors

// NewUnauthorizedError creates an authentication failure error
func NewUnauthorizedError(detail string) *ClientError {
	if detail == "" {
		detail = "invalid or expired credentials"
	}
	return New(ErrCodeUnauthorized, detail).
		WithSuggestion("Run 'prideconnect auth login' to re-authenticate").
		WithSuggestion("Check that your account still exists on this server")
}

// NewValidationError creates a request validation error
func NewValidationError(detail string) *ClientError {
	return New(ErrCodeValidation, fmt.Sprintf("invalid request: %s", detail)).
		WithSuggestion("Check the submitted fields and try again")
}

// NewNetworkError creates a transport-level error
func NewNetworkError(cause error) *ClientError {
	return Wrap(ErrCodeNetwork, "backend unreachable", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the API URL with 'prideconnect config show'")
}

// NewServerError creates an unexpected-backend-response error
func NewServerError(status int, detail string) *ClientError {
	msg := fmt.Sprintf("server error (status %d)", status)
	if detail != "" {
		msg += ": " + detail
	}
	return New(ErrCodeServer, msg).
		WithSuggestion("Retry in a few moments").
		WithSuggestion("If the problem persists, contact the platform operators")
}

// NewNotFoundError creates a missing-resource error
func NewNotFoundError(resource string) *ClientError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithSuggestion("Check the identifier and try again")
}

// NewBaseURLError creates a configuration error for a missing backend URL
func NewBaseURLError() *ClientError {
	return New(ErrCodeBaseURLEmpty, "no backend URL configured").
		WithSuggestion("Set PRIDECONNECT_API_URL or add api_url to the config file").
		WithSuggestion("Run 'prideconnect config show' to inspect the active configuration")
}
