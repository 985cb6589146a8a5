package api

import (
	"strings"

	"github.com/prideconnect/prideconnect/internal/errors"
)

// NormalizeBaseURL canonicalizes an externally supplied backend URL: trims
// whitespace and trailing slashes, and when secure is set upgrades a plain
// http scheme to https so a securely hosted client never issues mixed-content
// requests.
func NormalizeBaseURL(raw string, secure bool) (string, error) {
	normalized := strings.TrimSpace(raw)
	normalized = strings.TrimRight(normalized, "/")

	if normalized == "" {
		return "", errors.NewBaseURLError()
	}

	if secure && strings.HasPrefix(normalized, "http:") {
		normalized = "https:" + strings.TrimPrefix(normalized, "http:")
	}

	return normalized, nil
}
