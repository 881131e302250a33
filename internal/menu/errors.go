package menu

import (
	"fmt"
	"net/http"
	"strings"
)

// StatusError classifies a non-200 upstream response.
func StatusError(backend string, status int, body string) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: %s returned status %d: %s", ErrInvalidCredential, backend, status, body)
	}
	return fmt.Errorf("%w: %s returned status %d: %s", ErrUpstream, backend, status, body)
}

// MentionsAPIKey reports whether an upstream error message blames the key.
// Some services reject a bad key with a generic 400 whose message is the only
// signal.
func MentionsAPIKey(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "api key") || strings.Contains(lower, "api_key")
}
