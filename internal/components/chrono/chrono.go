package chrono

import (
	"context"
	"math/rand/v2"
	"time"
)

// TimeAPI is the interface that anything depending on the system clock should use.
//
// note: fault injection point
type TimeAPI interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// StandardTime is the standard implementation of TimeAPI using the standard library.
type StandardTime struct{}

// NewStandardTime is the constructor of StandardTime.
func NewStandardTime() StandardTime {
	return StandardTime{}
}

func (StandardTime) Now() time.Time {
	return time.Now()
}

func (StandardTime) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Jitter is a closed range of durations to sleep for.
type Jitter struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a uniformly random duration in [Min, Max).
func (j Jitter) Random() time.Duration {
	if j.Max <= j.Min {
		return j.Min
	}
	return j.Min + rand.N(j.Max-j.Min)
}

// SleepJitter sleeps for a random duration within j.
func SleepJitter(ctx context.Context, t TimeAPI, j Jitter) error {
	return t.Sleep(ctx, j.Random())
}
