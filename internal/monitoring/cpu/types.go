package cpu

import (
	"time"
)

// TickInterval is the fixed sampling period of the applet and the feed
const TickInterval = time.Second

// Sample holds one utilization percentage (0-100) per logical core,
// indexed by core ordinal. A new Sample replaces the previous one on every tick.
type Sample []float64

// Snapshot is the wire form of a Sample sent to feed clients
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Cores     []float64 `json:"cores"`
	Aggregate float64   `json:"aggregate"`
	Lines     []string  `json:"lines"`
}

// NewSnapshot builds the feed payload, deriving the aggregate from the sample
func NewSnapshot(sample Sample, at time.Time) Snapshot {
	cores := make([]float64, len(sample))
	copy(cores, sample)

	return Snapshot{
		Timestamp: at,
		Cores:     cores,
		Aggregate: Aggregate(sample),
		Lines:     Format(sample).All(),
	}
}

// HostInfo describes the processor the samples come from
type HostInfo struct {
	ModelName     string `json:"model_name"`
	VendorID      string `json:"vendor_id"`
	LogicalCores  int    `json:"logical_cores"`
	PhysicalCores int    `json:"physical_cores"`
	Architecture  string `json:"architecture"`
	IsVirtual     bool   `json:"is_virtual"`
	Hypervisor    string `json:"hypervisor"`
}
