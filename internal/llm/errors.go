package llm

import (
	"fmt"
	"strings"
)

// APIError reports a transport, auth, or quota failure from the model API.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("model api error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("model api error: %s", e.Message)
}

// isQuotaError reports whether an error message indicates rate limiting or
// quota exhaustion, which warrants rotating to the next API key.
func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// errorCode extracts an HTTP-ish status code from the error message when
// one is embedded, else 0.
func errorCode(err error) int {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return 429
	case strings.Contains(msg, "401") || strings.Contains(msg, "UNAUTHENTICATED"):
		return 401
	case strings.Contains(msg, "403") || strings.Contains(msg, "PERMISSION_DENIED"):
		return 403
	case strings.Contains(msg, "500") || strings.Contains(msg, "INTERNAL"):
		return 500
	case strings.Contains(msg, "503") || strings.Contains(msg, "UNAVAILABLE"):
		return 503
	default:
		return 0
	}
}
