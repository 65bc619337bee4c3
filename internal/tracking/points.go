package tracking

import (
	"iter"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Points holds the click targets collected while recording. Once frozen it
// refuses any further points.
type Points struct {
	mu     sync.Mutex
	pts    []Point
	frozen bool
	logger *zap.Logger
}

func NewPoints(logger *zap.Logger) *Points {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Points{logger: logger}
}

// Add appends p unless the points have been frozen. Late points are logged and dropped.
func (s *Points) Add(p Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		s.logger.Warn("points frozen, skipping", zap.Stringer("point", p))
		return
	}
	s.logger.Info("adding point", zap.Stringer("point", p), zap.Int("index", len(s.pts)))
	s.pts = append(s.pts, p)
}

// Freeze stops the points from accepting new entries. It cannot be undone.
func (s *Points) Freeze() {
	s.mu.Lock()
	s.frozen = true
	s.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (s *Points) Frozen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frozen
}

// Len returns the number of recorded points.
func (s *Points) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pts)
}

// Snapshot returns a copy of the recorded points in recording order.
func (s *Points) Snapshot() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// Iter walks the points sched.Iterations times in recording order. After each
// yielded point it calls wait with sched.Interval, and after each pass with
// sched.Pause. A wait that returns false ends the walk. The points are
// snapshotted when iteration starts, so every call returns an independent walk.
func (s *Points) Iter(sched Schedule, wait func(time.Duration) bool) iter.Seq[Point] {
	if wait == nil {
		wait = func(time.Duration) bool { return true }
	}
	return func(yield func(Point) bool) {
		pts := s.Snapshot()
		for i := 0; i < sched.Iterations; i++ {
			for _, p := range pts {
				if !yield(p) || !wait(sched.Interval) {
					return
				}
			}
			if !wait(sched.Pause) {
				return
			}
		}
	}
}
