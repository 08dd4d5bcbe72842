package cpu

import (
	"PowerManager/internal/pkg/logger"
	"PowerManager/internal/websocket"
	"fmt"
	"sync"
	"time"
)

// Publisher receives a snapshot after every check
type Publisher interface {
	BroadcastCPU(metrics interface{})
}

// Monitor owns the sampler and the last sample. The applet drives it from its
// tick handler; the headless feed drives it from its own ticker.
type Monitor struct {
	sampler    *Sampler
	publisher  Publisher
	ticker     *time.Ticker
	stopChan   chan struct{}
	isRunning  bool
	mutex      sync.Mutex
	refreshMu  sync.Mutex // serializes sampler access
	last       Sample
	lastUpdate time.Time
	checkCount int
}

// NewMonitor creates a CPU monitor sampling the host and publishing to the websocket registry
func NewMonitor() *Monitor {
	return NewMonitorWith(NewSampler(), websocket.GetRegistry())
}

// NewMonitorWith creates a CPU monitor over the given sampler and publisher.
// A nil publisher disables publishing.
func NewMonitorWith(sampler *Sampler, publisher Publisher) *Monitor {
	return &Monitor{
		sampler:   sampler,
		publisher: publisher,
	}
}

// StartMonitoring begins checking on the fixed tick interval
func (m *Monitor) StartMonitoring() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.isRunning {
		return fmt.Errorf("CPU monitor is already running")
	}

	m.ticker = time.NewTicker(TickInterval)
	m.stopChan = make(chan struct{})
	m.isRunning = true

	logger.Info("Starting CPU monitor", logger.Duration("interval", TickInterval))

	ticker, stop := m.ticker, m.stopChan
	go func() {
		m.CheckCPU()

		for {
			select {
			case <-ticker.C:
				m.CheckCPU()
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()

	return nil
}

// StopMonitoring halts the ticker started by StartMonitoring
func (m *Monitor) StopMonitoring() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.isRunning {
		return
	}

	close(m.stopChan)
	m.isRunning = false
	logger.Info("CPU monitor stopped")
}

// CheckCPU refreshes the sample, stores it and publishes a snapshot
func (m *Monitor) CheckCPU() Sample {
	m.refreshMu.Lock()
	sample := m.sampler.Refresh()
	m.refreshMu.Unlock()
	now := time.Now()

	m.mutex.Lock()
	m.last = sample
	m.lastUpdate = now
	m.checkCount++
	count := m.checkCount
	m.mutex.Unlock()

	// Log once every ~60 checks
	if count%60 == 0 {
		logger.Info("CPU status",
			logger.Float64("aggregate_percent", Aggregate(sample)),
			logger.Int("cores", len(sample)))
	}

	if m.publisher != nil {
		m.publisher.BroadcastCPU(NewSnapshot(sample, now))
	}

	return sample
}

// GetLastSample returns a copy of the most recently stored sample
func (m *Monitor) GetLastSample() Sample {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make(Sample, len(m.last))
	copy(out, m.last)
	return out
}

// GetSnapshot returns the last sample in feed form
func (m *Monitor) GetSnapshot() Snapshot {
	m.mutex.Lock()
	sample := make(Sample, len(m.last))
	copy(sample, m.last)
	at := m.lastUpdate
	m.mutex.Unlock()

	return NewSnapshot(sample, at)
}

// IsRunning reports whether the monitor's own ticker is active
func (m *Monitor) IsRunning() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.isRunning
}
