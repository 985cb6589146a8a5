package exitcode

import (
	stderrors "errors"
	"testing"

	"github.com/prideconnect/prideconnect/internal/errors"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"AuthError", AuthError, 3},
		{"ValidationError", ValidationError, 4},
		{"NetworkError", NetworkError, 5},
		{"NotFoundError", NotFoundError, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "unauthorized",
			err:      errors.NewUnauthorizedError("token expired"),
			expected: AuthError,
		},
		{
			name:     "missing token",
			err:      errors.New(errors.ErrCodeTokenMissing, "not logged in"),
			expected: AuthError,
		},
		{
			name:     "validation",
			err:      errors.NewValidationError("email already registered"),
			expected: ValidationError,
		},
		{
			name:     "network",
			err:      errors.NewNetworkError(stderrors.New("connection refused")),
			expected: NetworkError,
		},
		{
			name:     "timeout counts as network",
			err:      errors.New(errors.ErrCodeTimeout, "request timed out"),
			expected: NetworkError,
		},
		{
			name:     "not found",
			err:      errors.NewNotFoundError("event"),
			expected: NotFoundError,
		},
		{
			name:     "server error falls through to general",
			err:      errors.NewServerError(500, "internal error"),
			expected: GeneralError,
		},
		{
			name:     "plain error falls through to general",
			err:      stderrors.New("something else"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.expected {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	if got := Description(AuthError); got != "Authentication error" {
		t.Errorf("Description(AuthError) = %q", got)
	}
	if got := Description(99); got != "Unknown error" {
		t.Errorf("Description(99) = %q", got)
	}
}
