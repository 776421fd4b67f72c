package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrRecorded()
			m.IncrSampledOut()
		}()
	}
	wg.Wait()
	m.IncrIgnored()
	m.AddAlerts(3)
	m.IncrCacheHit()

	assert.Equal(t, int64(50), m.Recorded())
	assert.Equal(t, int64(50), m.SampledOut())

	stats := m.GetStats()
	assert.Equal(t, int64(50), stats["records_stored"])
	assert.Equal(t, int64(1), stats["records_ignored"])
	assert.Equal(t, int64(3), stats["alerts_raised"])
	assert.Equal(t, int64(1), stats["report_cache_hits"])
}

func TestMetricsAnalysisRuns(t *testing.T) {
	m := NewMetrics()
	m.AddAnalysisRun("prod", 12, 2*time.Millisecond)
	m.AddAnalysisRun("prod", 15, 4*time.Millisecond)
	m.AddAnalysisRun("dev", 3, time.Millisecond)

	envStats, ok := m.GetStats()["analysisstats"].(map[string]map[string]interface{})
	require.True(t, ok)
	require.Len(t, envStats, 2)

	prod := envStats["prod"]
	assert.Equal(t, int64(2), prod["runs"])
	assert.Equal(t, int64(6000), prod["total_time_us"])
	assert.Equal(t, int64(3000), prod["avg_time_us"])
	assert.Equal(t, 15, prod["last_routes"])
	assert.Equal(t, int64(1), envStats["dev"]["runs"])
}
