package notify

import (
	"context"
	"time"
)

// backoff blocks for the current interval and grows it by factor up to
// limit. It returns ctx.Err() if ctx ends first.
type backoff func(ctx context.Context) error

// exponentialDelays yields initial, initial*factor, ... capped at limit.
func exponentialDelays(initial time.Duration, factor float64, limit time.Duration) func() time.Duration {
	interval := initial
	return func() time.Duration {
		d := min(interval, limit)
		interval = min(time.Duration(float64(interval)*factor), limit)
		return d
	}
}

func exponentialBackoff(initial time.Duration, factor float64, limit time.Duration) backoff {
	next := exponentialDelays(initial, factor, limit)
	return func(ctx context.Context) error {
		timer := time.NewTimer(next())
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// retry calls f until it succeeds, waiting on b before every attempt after
// the first.
func retry(ctx context.Context, b backoff, f func() error) error {
	err := f()
	for err != nil {
		if werr := b(ctx); werr != nil {
			return werr
		}
		err = f()
	}
	return nil
}
