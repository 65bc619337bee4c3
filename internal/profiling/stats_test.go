package profiling

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalsLength(t *testing.T) {
	for l := 0; l < 6; l++ {
		trace := make(Trace, l)
		for i := range trace {
			trace[i] = time.Duration(i*i) * time.Millisecond
		}
		got := Intervals(trace)
		require.Len(t, got, max(0, l-1))
		for i, v := range got {
			assert.InDelta(t, (trace[i+1] - trace[i]).Seconds(), v, 1e-12)
		}
	}
}

func TestSummarizeWorkedExample(t *testing.T) {
	trace := Trace{0, 1 * time.Second, 2 * time.Second, 4 * time.Second}

	data := Intervals(trace)
	assert.Equal(t, []float64{1, 1, 2}, data)

	sum := Summarize(data)
	assert.Equal(t, 3, sum.Count)
	assert.InDelta(t, 4.0/3.0, sum.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(2.0/3.0)/3, sum.Std, 1e-9)
	assert.InDelta(t, 0.2722, sum.Std, 1e-4)
}

func TestSummarizeEmptyAndSingle(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{}, Summarize([]float64{}))

	// A single timestamp produces no intervals at all.
	assert.Equal(t, Summary{}, Summarize(Intervals(Trace{5 * time.Second})))

	one := Summarize([]float64{0.25})
	assert.Equal(t, 1, one.Count)
	assert.InDelta(t, 0.25, one.Mean, 1e-12)
	assert.Zero(t, one.Std)
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	in := []float64{1, 2, 3}
	Summarize(in)
	assert.Equal(t, []float64{1, 2, 3}, in)
}
