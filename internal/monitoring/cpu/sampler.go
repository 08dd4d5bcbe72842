package cpu

import (
	"PowerManager/internal/pkg/logger"

	gopsutilCPU "github.com/shirou/gopsutil/cpu"
)

// Source reports per-core utilization since its previous call
type Source interface {
	PerCore() ([]float64, error)
}

// TimesFunc reads cumulative CPU times, one entry per logical core when percpu is set
type TimesFunc func(percpu bool) ([]gopsutilCPU.TimesStat, error)

// TimesSource turns consecutive cumulative CPU time readings into utilization.
// It keeps the previous reading so each call measures the interval since the last one.
type TimesSource struct {
	times TimesFunc
	last  []gopsutilCPU.TimesStat
}

// NewTimesSource creates a source reading the host through gopsutil
func NewTimesSource() *TimesSource {
	return NewTimesSourceWith(gopsutilCPU.Times)
}

// NewTimesSourceWith creates a source over a custom times reader
func NewTimesSourceWith(times TimesFunc) *TimesSource {
	return &TimesSource{times: times}
}

// PerCore returns the busy percentage of every core since the previous call.
// The first call, and any call after the core count changed, reports zero for every core.
func (s *TimesSource) PerCore() ([]float64, error) {
	current, err := s.times(true)
	if err != nil {
		return nil, err
	}

	previous := s.last
	s.last = current

	usage := make([]float64, len(current))
	if len(previous) != len(current) {
		return usage, nil
	}

	for i := range current {
		usage[i] = busyPercent(previous[i], current[i])
	}
	return usage, nil
}

// busyPercent computes the non-idle share of the time elapsed between two readings
func busyPercent(before, after gopsutilCPU.TimesStat) float64 {
	totalDelta := totalTime(after) - totalTime(before)
	if totalDelta <= 0 {
		return 0
	}

	busyDelta := busyTime(after) - busyTime(before)
	percent := busyDelta / totalDelta * 100
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	}
	return percent
}

// totalTime excludes guest time, which the kernel already counts in user time
func totalTime(t gopsutilCPU.TimesStat) float64 {
	return t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
}

func busyTime(t gopsutilCPU.TimesStat) float64 {
	return totalTime(t) - t.Idle - t.Iowait
}

// Sampler refreshes per-core utilization from a Source.
// Failed refreshes are not reported: the previous sample is returned instead.
type Sampler struct {
	source Source
	last   Sample
}

// NewSampler creates a sampler over the host CPU counters
func NewSampler() *Sampler {
	return NewSamplerWithSource(NewTimesSource())
}

// NewSamplerWithSource creates a sampler over the given source
func NewSamplerWithSource(source Source) *Sampler {
	return &Sampler{source: source}
}

// Refresh samples every core and returns the new sample, or the previous
// sample (empty before the first success) when the source fails.
func (s *Sampler) Refresh() Sample {
	usage, err := s.source.PerCore()
	if err != nil {
		logger.Debug("CPU refresh failed, keeping previous sample", logger.Err(err))
		return s.Last()
	}
	if len(usage) == 0 {
		return s.Last()
	}

	s.last = Sample(usage)
	return s.Last()
}

// Last returns a copy of the most recent successful sample
func (s *Sampler) Last() Sample {
	out := make(Sample, len(s.last))
	copy(out, s.last)
	return out
}
