// Package profiling turns the click timestamps collected during playback
// into interval statistics and logs them.
package profiling

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trace holds one timestamp per click, measured on the monotonic clock as the
// time elapsed since playback started.
type Trace []time.Duration

// Summary describes a list of click intervals.
type Summary struct {
	Count int
	Mean  float64 // seconds
	Std   float64 // seconds, see Summarize
}

// Intervals returns the gaps between consecutive timestamps in seconds.
func Intervals(trace Trace) []float64 {
	if len(trace) < 2 {
		return []float64{}
	}
	out := make([]float64, 0, len(trace)-1)
	for i := 0; i < len(trace)-1; i++ {
		out = append(out, (trace[i+1] - trace[i]).Seconds())
	}
	return out
}

// Summarize returns the mean of intervals and its spread computed as
// sqrt(sum((x-mean)^2)) / n. The root is taken before dividing by n, which is
// not the textbook standard deviation; existing profile output depends on it.
// An empty input yields a zero Summary.
func Summarize(intervals []float64) Summary {
	n := len(intervals)
	if n == 0 {
		return Summary{}
	}
	mean := stat.Mean(intervals, nil)

	dev := make([]float64, n)
	copy(dev, intervals)
	floats.AddConst(-mean, dev)
	return Summary{Count: n, Mean: mean, Std: floats.Norm(dev, 2) / float64(n)}
}
