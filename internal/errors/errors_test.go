package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnauthorized, "test error message")

	if err.Code != ErrCodeUnauthorized {
		t.Errorf("expected code %s, got %s", ErrCodeUnauthorized, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeNetwork, "backend unreachable", cause)

	if err.Code != ErrCodeNetwork {
		t.Errorf("expected code %s, got %s", ErrCodeNetwork, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClientError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeValidation, "missing email"),
			wantCode: "API-001",
			wantMsg:  "missing email",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeNetwork, "request failed", fmt.Errorf("connection refused")),
			wantCode: "NET-001",
			wantMsg:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrCodeBaseURLEmpty, "no backend URL configured").
		WithSuggestion("Set PRIDECONNECT_API_URL")

	if len(err.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(err.Suggestions))
	}

	if err.Suggestions[0] != "Set PRIDECONNECT_API_URL" {
		t.Errorf("unexpected suggestion: %s", err.Suggestions[0])
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "client error",
			err:  New(ErrCodeUnauthorized, "nope"),
			want: ErrCodeUnauthorized,
		},
		{
			name: "wrapped client error",
			err:  fmt.Errorf("outer: %w", New(ErrCodeServer, "boom")),
			want: ErrCodeServer,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	if !IsUnauthorized(NewUnauthorizedError("")) {
		t.Error("IsUnauthorized should match NewUnauthorizedError")
	}

	if !IsValidation(NewValidationError("missing field")) {
		t.Error("IsValidation should match NewValidationError")
	}

	if !IsNetwork(NewNetworkError(fmt.Errorf("dial tcp: refused"))) {
		t.Error("IsNetwork should match NewNetworkError")
	}

	if !IsNetwork(New(ErrCodeTimeout, "timed out")) {
		t.Error("IsNetwork should treat timeouts as network failures")
	}

	if !IsNotFound(NewNotFoundError("post")) {
		t.Error("IsNotFound should match NewNotFoundError")
	}

	if IsUnauthorized(NewServerError(500, "")) {
		t.Error("IsUnauthorized should not match server errors")
	}
}

func TestConstructorSuggestions(t *testing.T) {
	err := NewUnauthorizedError("")

	if len(err.Suggestions) == 0 {
		t.Error("unauthorized errors should carry recovery suggestions")
	}

	found := false
	for _, s := range err.Suggestions {
		if strings.Contains(s, "auth login") {
			found = true
		}
	}
	if !found {
		t.Error("unauthorized error should suggest re-authenticating")
	}
}
