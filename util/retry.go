package util

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retrier retries an operation with exponential backoff, via
// "github.com/cenkalti/backoff". Scheduler submit commands fail
// transiently when the controller is busy, so a short bounded retry
// is applied before giving up.
type Retrier struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxTries        int
	// ShouldRetry reports whether an error is worth retrying. A nil
	// ShouldRetry retries every error.
	ShouldRetry func(err error) bool
	// Notify is called before each retry wait.
	Notify func(err error, d time.Duration)
}

// NewRetrier creates a new Retrier instance using default values.
func NewRetrier() *Retrier {
	return &Retrier{
		InitialInterval: time.Millisecond * 500,
		MaxInterval:     time.Second * 10,
		Multiplier:      2.0,
		MaxTries:        3,
	}
}

// Retry runs f until it succeeds, the try limit is reached, or the
// context is canceled.
func (r *Retrier) Retry(ctx context.Context, f func() error) error {
	eb := &backoff.ExponentialBackOff{
		InitialInterval:     r.InitialInterval,
		MaxInterval:         r.MaxInterval,
		Multiplier:          r.Multiplier,
		RandomizationFactor: 0.1,
		Clock:               backoff.SystemClock,
	}

	tries := r.MaxTries - 1
	if tries < 0 {
		tries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(tries)), ctx)

	return backoff.RetryNotify(func() error {
		err := f()
		if err != nil && r.ShouldRetry != nil && !r.ShouldRetry(err) {
			return &backoff.PermanentError{Err: err}
		}
		return err
	}, b, func(err error, d time.Duration) {
		if r.Notify != nil {
			r.Notify(err, d)
		}
	})
}
