package profiling

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Reporter logs the profile of a playback run.
type Reporter struct {
	logger *zap.Logger
}

func NewReporter(logger *zap.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Report summarises trace and logs the result at info level. It returns the
// summary so callers can inspect it.
func (r *Reporter) Report(trace Trace, usage Usage) Summary {
	data := Intervals(trace)
	sum := Summarize(data)

	r.logger.Info(fmt.Sprintf("%s profile %s", strings.Repeat("=", 20), strings.Repeat("=", 20)))
	r.logger.Info(fmt.Sprintf(" | interval mean | %.4f s|", sum.Mean), zap.Float64("mean", sum.Mean))
	r.logger.Info(fmt.Sprintf(" | interval std  | %.4f s|", sum.Std), zap.Float64("std", sum.Std))
	r.logger.Info(" | interval data |", zap.Float64s("intervals", data), zap.Int("clicks", len(trace)))
	r.logger.Info(fmt.Sprintf(" | cpu / wall    | %.2f |", usage.Ratio()),
		zap.Duration("cpu", usage.CPU),
		zap.Duration("wall", usage.Wall),
	)
	return sum
}
