package errors

import (
	"context"
	"errors"
	"os"
)

// returns the message safe to expose to clients
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	if os.Getenv("ENVIRONMENT") != "production" {
		return err.Error()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		// panics and limiter store failures
		return "an error occurred"
	}
}
