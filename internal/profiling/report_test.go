package profiling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReportLogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewReporter(zap.New(core))

	sum := r.Report(Trace{0, time.Second, 2 * time.Second, 4 * time.Second}, Usage{Wall: 4 * time.Second, CPU: 2 * time.Second})
	assert.InDelta(t, 4.0/3.0, sum.Mean, 1e-9)

	entries := logs.All()
	require.Len(t, entries, 5)
	for _, e := range entries {
		assert.Equal(t, zapcore.InfoLevel, e.Level)
	}
	assert.Equal(t, " | interval mean | 1.3333 s|", entries[1].Message)
	assert.Equal(t, " | interval std  | 0.2722 s|", entries[2].Message)
	assert.Equal(t, " | cpu / wall    | 0.50 |", entries[4].Message)
}

func TestReportEmptyTrace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewReporter(zap.New(core))

	var sum Summary
	assert.NotPanics(t, func() { sum = r.Report(nil, Usage{}) })
	assert.Equal(t, Summary{}, sum)
	assert.Equal(t, " | interval mean | 0.0000 s|", logs.All()[1].Message)
}

func TestMeter(t *testing.T) {
	now := time.Unix(0, 0)
	cpu := time.Duration(0)
	m := &Meter{
		sample: func() (time.Duration, error) { return cpu, nil },
		now:    func() time.Time { return now },
	}

	m.Start()
	now = now.Add(2 * time.Second)
	cpu += 1500 * time.Millisecond

	u, err := m.Stop()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, u.Wall)
	assert.Equal(t, 1500*time.Millisecond, u.CPU)
	assert.InDelta(t, 0.75, u.Ratio(), 1e-9)
}

func TestMeterSampleFailure(t *testing.T) {
	boom := errors.New("no procfs")
	now := time.Unix(0, 0)
	m := &Meter{
		sample: func() (time.Duration, error) { return 0, boom },
		now:    func() time.Time { return now },
	}
	m.Start()
	now = now.Add(time.Second)

	u, err := m.Stop()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, time.Second, u.Wall)
	assert.Zero(t, u.CPU)
	assert.Zero(t, Usage{}.Ratio())
}

func TestSampleCPU(t *testing.T) {
	d, err := SampleCPU()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, time.Duration(0))
}
