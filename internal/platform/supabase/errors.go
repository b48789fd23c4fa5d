package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthorized  = errors.New("invalid or expired access token")
	ErrNotConfigured = errors.New("supabase url not configured")
)

// APIError is a non-2xx answer from GoTrue.
type APIError struct {
	StatusCode int
	Message    string
}

// Error reports the status and the provider message.
func (e *APIError) Error() string {
	return fmt.Sprintf("supabase auth: status %d: %s", e.StatusCode, e.Message)
}

// GoTrue has used several error shapes across versions.
func providerMessage(raw []byte) string {
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, s := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "empty response"
	}
	if len(s) > 256 {
		s = s[:256] + "..."
	}
	return s
}
