package profiling

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Usage is the wall and CPU time a playback run consumed. The busy-wait delay
// keeps a core spinning, so CPU close to Wall is expected.
type Usage struct {
	Wall time.Duration
	CPU  time.Duration
}

// Ratio reports CPU time as a fraction of wall time.
func (u Usage) Ratio() float64 {
	if u.Wall <= 0 {
		return 0
	}
	return u.CPU.Seconds() / u.Wall.Seconds()
}

// SampleCPU returns the user plus system CPU time consumed by this process so far.
func SampleCPU() (time.Duration, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("failed to open current process: %w", err)
	}
	times, err := p.Times()
	if err != nil {
		return 0, fmt.Errorf("failed to read process cpu times: %w", err)
	}
	return time.Duration((times.User + times.System) * float64(time.Second)), nil
}

// Meter measures the Usage between Start and Stop.
type Meter struct {
	sample   func() (time.Duration, error)
	now      func() time.Time
	started  time.Time
	cpuStart time.Duration
	cpuErr   error
}

func NewMeter() *Meter {
	return &Meter{sample: SampleCPU, now: time.Now}
}

func (m *Meter) Start() {
	m.started = m.now()
	m.cpuStart, m.cpuErr = m.sample()
}

// Stop returns the usage since Start. CPU is left at zero when the process
// times could not be read.
func (m *Meter) Stop() (Usage, error) {
	u := Usage{Wall: m.now().Sub(m.started)}
	if m.cpuErr != nil {
		return u, m.cpuErr
	}
	end, err := m.sample()
	if err != nil {
		return u, err
	}
	u.CPU = end - m.cpuStart
	return u, nil
}
