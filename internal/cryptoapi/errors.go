package cryptoapi

import (
	"errors"
	"fmt"
)

// StatusError is a non-2xx answer from the service.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, truncate(e.Body, 200))
}

// RetryableError marks a transient failure: a transport error or a 5xx answer.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string { return "retryable: " + e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
