package util

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetrier(t *testing.T) {
	r := NewRetrier()
	r.InitialInterval = time.Millisecond
	r.MaxTries = 3
	bg := context.Background()

	i := 0
	err := r.Retry(bg, func() error {
		i++
		return fmt.Errorf("always error")
	})
	if err == nil {
		t.Error("expected error")
	}
	if i != 3 {
		t.Error("unexpected number of tries", i)
	}

	i = 0
	err = r.Retry(bg, func() error {
		i++
		return nil
	})
	if err != nil {
		t.Error("unexpected error", err)
	}
	if i != 1 {
		t.Error("unexpected number of tries", i)
	}
}

func TestRetrierPermanentError(t *testing.T) {
	r := NewRetrier()
	r.InitialInterval = time.Millisecond
	r.ShouldRetry = func(err error) bool {
		return false
	}

	i := 0
	err := r.Retry(context.Background(), func() error {
		i++
		return errors.New("fatal")
	})
	if err == nil {
		t.Error("expected error")
	}
	if i != 1 {
		t.Error("permanent error should not be retried", i)
	}
}
