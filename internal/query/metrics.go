package query

import (
	"sync/atomic"
	"time"
)

// Metrics tracks cache statistics using atomic operations for thread-safety
type Metrics struct {
	Hits          atomic.Int64
	Misses        atomic.Int64
	Loads         atomic.Int64
	Shared        atomic.Int64
	Errors        atomic.Int64
	Invalidations atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Hits          int64     `json:"hits"`
	Misses        int64     `json:"misses"`
	Loads         int64     `json:"loads"`
	Shared        int64     `json:"shared"`
	Errors        int64     `json:"errors"`
	Invalidations int64     `json:"invalidations"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Hits:          m.Hits.Load(),
		Misses:        m.Misses.Load(),
		Loads:         m.Loads.Load(),
		Shared:        m.Shared.Load(),
		Errors:        m.Errors.Load(),
		Invalidations: m.Invalidations.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).Round(time.Second).String(),
	}
}
