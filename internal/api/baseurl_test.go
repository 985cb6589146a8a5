package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		secure bool
		want   string
	}{
		{
			name: "plain URL passes through",
			raw:  "https://api.example.com",
			want: "https://api.example.com",
		},
		{
			name: "trailing slashes stripped",
			raw:  "https://api.example.com///",
			want: "https://api.example.com",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  https://api.example.com \n",
			want: "https://api.example.com",
		},
		{
			name:   "http upgraded when client is secure",
			raw:    "http://api.example.com",
			secure: true,
			want:   "https://api.example.com",
		},
		{
			name:   "https untouched when client is secure",
			raw:    "https://api.example.com",
			secure: true,
			want:   "https://api.example.com",
		},
		{
			name: "http kept when client is not secure",
			raw:  "http://localhost:8000",
			want: "http://localhost:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw, tt.secure)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeBaseURLEmpty(t *testing.T) {
	_, err := NormalizeBaseURL("   ", false)
	require.Error(t, err)

	_, err = NormalizeBaseURL("///", false)
	require.Error(t, err)
}
