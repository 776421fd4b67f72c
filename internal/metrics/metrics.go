package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics counts recording activity and analysis runs for the process.
type Metrics struct {
	startTime     time.Time
	recorded      int64
	sampledOut    int64
	ignored       int64
	alertsRaised  int64
	cacheHits     int64
	analysisStats map[string]*AnalysisStats
	mu            sync.RWMutex
}

type AnalysisStats struct {
	Runs        int64
	TotalTime   int64
	LastRoutes  int
	LastRunTime time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		startTime:     time.Now(),
		analysisStats: make(map[string]*AnalysisStats),
	}
}

func (m *Metrics) IncrRecorded() {
	atomic.AddInt64(&m.recorded, 1)
}

func (m *Metrics) IncrSampledOut() {
	atomic.AddInt64(&m.sampledOut, 1)
}

func (m *Metrics) IncrIgnored() {
	atomic.AddInt64(&m.ignored, 1)
}

func (m *Metrics) AddAlerts(n int) {
	atomic.AddInt64(&m.alertsRaised, int64(n))
}

func (m *Metrics) IncrCacheHit() {
	atomic.AddInt64(&m.cacheHits, 1)
}

func (m *Metrics) Recorded() int64 {
	return atomic.LoadInt64(&m.recorded)
}

func (m *Metrics) SampledOut() int64 {
	return atomic.LoadInt64(&m.sampledOut)
}

func (m *Metrics) AddAnalysisRun(env string, routes int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats, exists := m.analysisStats[env]
	if !exists {
		stats = &AnalysisStats{}
		m.analysisStats[env] = stats
	}

	stats.Runs++
	stats.TotalTime += duration.Nanoseconds()
	stats.LastRoutes = routes
	stats.LastRunTime = time.Now()
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]interface{})
	stats["uptime_in_seconds"] = int(time.Since(m.startTime).Seconds())
	stats["records_stored"] = atomic.LoadInt64(&m.recorded)
	stats["records_sampled_out"] = atomic.LoadInt64(&m.sampledOut)
	stats["records_ignored"] = atomic.LoadInt64(&m.ignored)
	stats["alerts_raised"] = atomic.LoadInt64(&m.alertsRaised)
	stats["report_cache_hits"] = atomic.LoadInt64(&m.cacheHits)

	envStats := make(map[string]map[string]interface{})
	for env, stat := range m.analysisStats {
		envStats[env] = map[string]interface{}{
			"runs":          stat.Runs,
			"total_time_us": stat.TotalTime / 1000,
			"avg_time_us":   stat.TotalTime / stat.Runs / 1000,
			"last_routes":   stat.LastRoutes,
			"last_run_time": stat.LastRunTime,
		}
	}
	stats["analysisstats"] = envStats

	return stats
}
