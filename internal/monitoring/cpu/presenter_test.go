package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   float64
	}{
		{name: "empty sample", sample: nil, want: 0},
		{name: "empty non-nil sample", sample: Sample{}, want: 0},
		{name: "single core", sample: Sample{50}, want: 50},
		{name: "idle and busy", sample: Sample{0, 100}, want: 50},
		{name: "four cores", sample: Sample{10, 20, 30, 40}, want: 25},
		{name: "fractional", sample: Sample{33.333, 66.667, 0.5}, want: (33.333 + 66.667 + 0.5) / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Aggregate(tt.sample), 1e-9)
		})
	}
}

func TestAggregateIsMean(t *testing.T) {
	sample := make(Sample, 64)
	var sum float64
	for i := range sample {
		sample[i] = float64(i*37%101) + 0.25
		sum += sample[i]
	}

	assert.InDelta(t, sum/float64(len(sample)), Aggregate(sample), 1e-9)
}

func TestFormat(t *testing.T) {
	lines := Format(Sample{33.333, 100, 0})

	assert.Equal(t, "Aggregate CPU usage: 44.44%", lines.Aggregate)
	require.Len(t, lines.Cores, 3)
	assert.Equal(t, "CPU 1: 33.33%", lines.Cores[0])
	assert.Equal(t, "CPU 2: 100.00%", lines.Cores[1])
	assert.Equal(t, "CPU 3: 0.00%", lines.Cores[2])
}

func TestFormatEmpty(t *testing.T) {
	lines := Format(nil)

	assert.Equal(t, "Aggregate CPU usage: 0.00%", lines.Aggregate)
	assert.Empty(t, lines.Cores)
	assert.Equal(t, []string{"Aggregate CPU usage: 0.00%"}, lines.All())
}

func TestLinesAllOrder(t *testing.T) {
	all := Format(Sample{12.347, 67.891}).All()

	assert.Equal(t, []string{
		"Aggregate CPU usage: 40.12%",
		"CPU 1: 12.35%",
		"CPU 2: 67.89%",
	}, all)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "33.33%", FormatPercent(33.333))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "99.99%", FormatPercent(99.994))
}

func TestNewSnapshotCopiesSample(t *testing.T) {
	sample := Sample{10, 30}
	snap := NewSnapshot(sample, fixedTime)
	sample[0] = 90

	assert.Equal(t, []float64{10, 30}, snap.Cores)
	assert.InDelta(t, 20.0, snap.Aggregate, 1e-9)
	assert.Equal(t, []string{"Aggregate CPU usage: 20.00%", "CPU 1: 10.00%", "CPU 2: 30.00%"}, snap.Lines)
	assert.Equal(t, fixedTime, snap.Timestamp)
}
