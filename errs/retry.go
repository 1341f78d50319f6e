package errs

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// NewBackOff returns the exponential retry policy used for transient
// venue failures.
func NewBackOff() *backoff.ExponentialBackOff {
	cfg := backoff.NewExponentialBackOff()
	cfg.InitialInterval = 500 * time.Millisecond
	cfg.MaxInterval = 30 * time.Second
	return cfg
}

// Permanent marks err as non-retryable for backoff-driven retry loops.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Retryable reports whether a retry loop may attempt err again.
// Authentication rejections and configuration errors are permanent:
// replaying an identically signed request cannot succeed, and repeated
// auth failures must surface to the trading layer instead of being
// masked by retries.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var e *E
	if !errors.As(err, &e) {
		return true
	}
	switch e.Code {
	case CodeAuth, CodeConfig, CodeInvalid:
		return false
	default:
		return true
	}
}

// Classify wraps err for use inside a backoff retry operation,
// marking non-retryable categories as permanent.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if !Retryable(err) {
		return Permanent(err)
	}
	return err
}
