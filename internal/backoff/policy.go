// Package backoff decides whether and when a failed delivery is retried.
package backoff

import (
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

// maxShift caps the exponent so the delay cannot overflow time.Duration.
const maxShift = 20

// networkMarkers identify transport-level failures in error text.
var networkMarkers = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"connection reset",
	"connection refused",
	"connection closed",
	"broken pipe",
	"no such host",
	"network is unreachable",
	"temporary failure",
	"eof",
	"econnreset",
	"econnrefused",
	"etimedout",
	"enotfound",
	"eai_again",
	"socket",
}

// NextRetryDelay returns base*2^attempt plus a uniform jitter in [0, jitterMax].
// attempt is 0-indexed and names the attempt that just completed.
func NextRetryDelay(attempt int, base, jitterMax time.Duration) time.Duration {
	return exponential(attempt, base) + jitter(jitterMax, rand.Int64N)
}

// ShouldRetry reports whether another attempt is allowed.
func ShouldRetry(attempts, maxAttempts int) bool {
	return attempts < maxAttempts
}

// IsRetriableFailure classifies a provider failure. Rate limits and server
// errors are retriable, client errors are terminal, transport failures are
// recognised by their error text, and anything else is terminal.
func IsRetriableFailure(statusCode int, errText string) bool {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return true
	case statusCode >= 500 && statusCode <= 599:
		return true
	}

	switch statusCode {
	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusUnprocessableEntity:
		return false
	}

	return isNetworkError(errText)
}

func isNetworkError(errText string) bool {
	if errText == "" {
		return false
	}

	lower := strings.ToLower(errText)
	for _, marker := range networkMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

// Policy carries the configured backoff parameters.
type Policy struct {
	BaseDelay time.Duration
	JitterMax time.Duration

	randN func(n int64) int64
}

// NewPolicy returns a Policy using the process-wide random source.
func NewPolicy(base, jitterMax time.Duration) Policy {
	return Policy{BaseDelay: base, JitterMax: jitterMax, randN: rand.Int64N}
}

// WithRand returns a copy of p drawing jitter from randN.
func (p Policy) WithRand(randN func(n int64) int64) Policy {
	p.randN = randN
	return p
}

// NextRetryDelay returns the delay before the attempt following attempt.
func (p Policy) NextRetryDelay(attempt int) time.Duration {
	randN := p.randN
	if randN == nil {
		randN = rand.Int64N
	}

	return exponential(attempt, p.BaseDelay) + jitter(p.JitterMax, randN)
}

// NextRetryAt returns the earliest time of the next attempt after a failure at now.
func (p Policy) NextRetryAt(now time.Time, attempt int) time.Time {
	return now.Add(p.NextRetryDelay(attempt))
}

func exponential(attempt int, base time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > maxShift {
		attempt = maxShift
	}

	return base * time.Duration(int64(1)<<uint(attempt))
}

func jitter(limit time.Duration, randN func(n int64) int64) time.Duration {
	if limit <= 0 {
		return 0
	}

	return time.Duration(randN(int64(limit) + 1))
}
