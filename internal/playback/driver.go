// Package playback records click targets from hotkeys and replays them as
// synthetic clicks.
package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vedantwpatil/Auto-Clicker/internal/input"
	"github.com/vedantwpatil/Auto-Clicker/internal/profiling"
	"github.com/vedantwpatil/Auto-Clicker/internal/tracking"
	"go.uber.org/zap"
)

type State int

const (
	StateRecording State = iota
	StatePlaying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StatePlaying:
		return "playing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config is fixed for the lifetime of a Driver.
type Config struct {
	Schedule  tracking.Schedule
	Profile   bool
	RecordKey input.Combo
	StartKey  input.Combo
}

// Driver owns one record-then-playback session.
type Driver struct {
	config  Config
	hotkeys input.Hotkeys
	pointer input.Pointer
	logger  *zap.Logger
	points  *tracking.Points

	// Overridable in tests
	clock Clock
	wait  func(context.Context, time.Duration) error
	meter *profiling.Meter

	mu        sync.Mutex
	state     State
	trace     profiling.Trace
	startOnce sync.Once
	startChan chan struct{}
}

func NewDriver(config Config, hotkeys input.Hotkeys, pointer input.Pointer, logger *zap.Logger) *Driver {
	return &Driver{
		config:    config,
		hotkeys:   hotkeys,
		pointer:   pointer,
		logger:    logger,
		points:    tracking.NewPoints(logger),
		clock:     SystemClock,
		wait:      Delay,
		meter:     profiling.NewMeter(),
		state:     StateRecording,
		startChan: make(chan struct{}),
	}
}

func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Driver) setState(s State) {
	d.mu.Lock()
	prev := d.state
	d.state = s
	d.mu.Unlock()
	d.logger.Debug("state changed", zap.Stringer("from", prev), zap.Stringer("to", s))
}

// Points exposes the recorded click targets.
func (d *Driver) Points() *tracking.Points {
	return d.points
}

// Trace returns the click timestamps of the last playback.
func (d *Driver) Trace() profiling.Trace {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(profiling.Trace, len(d.trace))
	copy(out, d.trace)
	return out
}

// RecordPoint adds the current cursor position. Bound to the record hotkey.
func (d *Driver) RecordPoint() {
	x, y := d.pointer.Location()
	d.points.Add(tracking.Point{X: x, Y: y})
}

// FinishRecording freezes the points and releases Run into playback. Bound to
// the start hotkey; repeated presses are ignored. This is the only place the
// points are frozen, under the same lock Add takes.
func (d *Driver) FinishRecording() {
	d.startOnce.Do(func() {
		d.points.Freeze()
		close(d.startChan)
	})
}

// Run binds the hotkeys, waits for recording to finish and then plays the
// points back on the calling goroutine. It returns ctx.Err() if ctx is
// cancelled before or during playback.
func (d *Driver) Run(ctx context.Context) error {
	d.hotkeys.Bind(d.config.RecordKey, d.RecordPoint)
	d.hotkeys.Bind(d.config.StartKey, d.FinishRecording)
	d.hotkeys.Start()

	d.logger.Info(fmt.Sprintf("ready, press %s to add points; press %s to freeze points and start click looping",
		d.config.RecordKey, d.config.StartKey))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.startChan:
	}

	d.setState(StatePlaying)

	err := d.loop(ctx)
	d.setState(StateDone)
	return err
}

func (d *Driver) loop(ctx context.Context) error {
	sched := d.config.Schedule
	d.logger.Info("starting playback",
		zap.Int("points", d.points.Len()),
		zap.Int("iterations", sched.Iterations),
		zap.Duration("interval", sched.Interval),
		zap.Duration("pause", sched.Pause),
	)

	if d.config.Profile {
		d.meter.Start()
	}

	wait := func(dur time.Duration) bool {
		return d.wait(ctx, dur) == nil
	}

	var (
		trace   profiling.Trace
		started = d.clock.Now()
	)
	for p := range d.points.Iter(sched, wait) {
		if ctx.Err() != nil {
			break
		}
		trace = append(trace, d.clock.Now().Sub(started))
		d.pointer.Click(p.X, p.Y)
	}

	err := ctx.Err()
	if err != nil {
		d.logger.Warn("playback interrupted", zap.Int("clicks", len(trace)), zap.Error(err))
	}

	d.mu.Lock()
	d.trace = trace
	d.mu.Unlock()

	d.logger.Info("playback finished", zap.Int("clicks", len(trace)))

	if d.config.Profile {
		usage, uerr := d.meter.Stop()
		if uerr != nil {
			d.logger.Warn("unable to sample cpu usage", zap.Error(uerr))
		}
		profiling.NewReporter(d.logger).Report(trace, usage)
	}
	return err
}
