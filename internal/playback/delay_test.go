package playback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now   time.Time
	step  time.Duration
	calls int
}

func (c *stepClock) Now() time.Time {
	c.calls++
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestSpinWaitZeroDoesNotSample(t *testing.T) {
	c := &stepClock{now: time.Unix(0, 0), step: time.Millisecond}
	require.NoError(t, SpinWait(context.Background(), c, 0))
	require.NoError(t, SpinWait(context.Background(), c, -time.Second))
	assert.Zero(t, c.calls)
}

func TestSpinWaitSamplesUntilElapsed(t *testing.T) {
	c := &stepClock{now: time.Unix(0, 0), step: time.Millisecond}
	require.NoError(t, SpinWait(context.Background(), c, 5*time.Millisecond))
	// one reading for the start, then one per millisecond until 5ms have passed
	assert.Equal(t, 6, c.calls)
}

func TestSpinWaitCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &stepClock{now: time.Unix(0, 0), step: time.Millisecond}
	assert.ErrorIs(t, SpinWait(ctx, c, time.Hour), context.Canceled)
	assert.Zero(t, c.calls)
}

func TestSpinWaitStopsWhenCancelledMidWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &stepClock{now: time.Unix(0, 0), step: time.Nanosecond}

	// cancel once the spin is underway; a nanosecond per sample would
	// otherwise need an hour's worth of samples
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	err := SpinWait(ctx, c, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDelayZeroReturnsImmediately(t *testing.T) {
	start := time.Now()
	require.NoError(t, Delay(context.Background(), Millis(0)))
	assert.Less(t, time.Since(start), 10*time.Millisecond)
}

func TestDelayWaitsAtLeastDuration(t *testing.T) {
	start := time.Now()
	require.NoError(t, Delay(context.Background(), Millis(3)))
	assert.GreaterOrEqual(t, time.Since(start), 3*time.Millisecond)
}

func TestDelayCancelledDuringLongWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Delay(ctx, 2*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestMillis(t *testing.T) {
	assert.Equal(t, time.Duration(250e6), Millis(250))
	assert.Zero(t, Millis(0))
}
