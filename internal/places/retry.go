package places

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// StatusError reports a non-2xx response from the Places API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places API returned status %d", e.StatusCode)
}

// IsRateLimit reports whether the error is an HTTP 429 status error.
func IsRateLimit(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests
}

// RetryPolicy controls how rate-limited requests are reissued. Only 429
// responses are retried; network errors and other statuses fail the
// request immediately.
type RetryPolicy struct {
	// MaxRetries is the number of reissues after the initial attempt.
	MaxRetries uint64
	// Delay is the fixed pause before each reissue.
	Delay time.Duration
}

// DefaultRetryPolicy matches the API's rate-limit guidance: one retry
// after a 5 second pause.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 1, Delay: 5 * time.Second}
}

// ZeroDelayRetryPolicy keeps the single retry but sleeps nothing. Used in
// tests.
func ZeroDelayRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 1, Delay: 0}
}

// backOff builds the backoff schedule for one request.
func (p RetryPolicy) backOff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), p.MaxRetries)
}
