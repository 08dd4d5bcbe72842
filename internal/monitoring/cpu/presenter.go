package cpu

import (
	"fmt"
)

// Lines are the display strings for one sample
type Lines struct {
	Aggregate string
	Cores     []string
}

// All returns the aggregate line followed by the per-core lines
func (l Lines) All() []string {
	out := make([]string, 0, len(l.Cores)+1)
	out = append(out, l.Aggregate)
	return append(out, l.Cores...)
}

// Aggregate returns the arithmetic mean of the sample, or 0 for an empty sample.
func Aggregate(sample Sample) float64 {
	if len(sample) == 0 {
		return 0
	}

	var total float64
	for _, usage := range sample {
		total += usage
	}
	return total / float64(len(sample))
}

// Format renders one aggregate line and one line per core, two decimals each.
// Cores are numbered from 1.
func Format(sample Sample) Lines {
	cores := make([]string, len(sample))
	for i, usage := range sample {
		cores[i] = FormatCore(i, usage)
	}

	return Lines{
		Aggregate: FormatAggregate(Aggregate(sample)),
		Cores:     cores,
	}
}

// FormatAggregate renders the aggregate usage line
func FormatAggregate(usage float64) string {
	return fmt.Sprintf("Aggregate CPU usage: %s", FormatPercent(usage))
}

// FormatCore renders the line for the core at the given ordinal
func FormatCore(ordinal int, usage float64) string {
	return fmt.Sprintf("CPU %d: %s", ordinal+1, FormatPercent(usage))
}

// FormatPercent formats a percentage with two decimals
func FormatPercent(usage float64) string {
	return fmt.Sprintf("%.2f%%", usage)
}
