package utils

import (
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an OpenAI call failure looks transient enough
// to be worth one more attempt. Anything else fails straight through to the
// caller.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection reset by peer") ||
		strings.Contains(msg, "context deadline exceeded")
}
