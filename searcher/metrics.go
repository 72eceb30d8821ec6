package searcher

import (
	"sync/atomic"
	"time"
)

// MoveMetrics summarizes one FindMove call.
type MoveMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int64
	FullPlayouts int64
}

type MetricsCollector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime    time.Time
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddEpisode()           {}
func (m *noMetricsCollector) AddFullPlayout()       {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
