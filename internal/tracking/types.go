package tracking

import (
	"fmt"
	"time"
)

// Point is a recorded screen coordinate that playback clicks on.
type Point struct {
	X int // X coordinate of the cursor when the point was recorded
	Y int // Y coordinate of the cursor when the point was recorded
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Schedule controls how a sequence of points is walked during playback.
type Schedule struct {
	Iterations int           // Number of full passes over the points
	Interval   time.Duration // Wait after every point
	Pause      time.Duration // Wait after every pass
}
