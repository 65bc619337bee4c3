package playback

import (
	"context"
	"time"
)

// Clock exposes the monotonic clock the busy-wait samples.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, whose readings carry a monotonic component.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ctx is polled once per this many clock samples while spinning.
const cancelCheckEvery = 1024

// Millis converts a millisecond count into a Duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Delay spins until d has elapsed on the system clock or ctx is done.
func Delay(ctx context.Context, d time.Duration) error {
	return SpinWait(ctx, SystemClock, d)
}

// SpinWait blocks by sampling clock in a tight loop until d has elapsed. It
// burns a core on purpose: sleeping would round the wait up to the scheduler's
// resolution. A non-positive d returns without sampling the clock. The wait is
// abandoned with ctx.Err() once ctx is done.
func SpinWait(ctx context.Context, clock Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	start := clock.Now()
	for n := 1; clock.Now().Sub(start) < d; n++ {
		if n%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
