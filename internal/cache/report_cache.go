package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/genc-murat/routeperf/internal/core/models"
)

const DefaultTTL = time.Hour

// ReportCache keeps the latest analysis report per environment until its TTL
// runs out or the environment receives new records.
type ReportCache struct {
	reports map[string]*models.Report
	expires map[string]time.Time
	mu      sync.RWMutex
	hits    int64
	misses  int64
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

func NewReportCache() *ReportCache {
	rc := &ReportCache{
		reports: make(map[string]*models.Report),
		expires: make(map[string]time.Time),
		now:     time.Now,
		done:    make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rc.cleanExpired()
			case <-rc.done:
				return
			}
		}
	}()

	return rc
}

func (c *ReportCache) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *ReportCache) Get(env string) (*models.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if expireTime, ok := c.expires[env]; ok && !c.now().Before(expireTime) {
		delete(c.reports, env)
		delete(c.expires, env)
	}

	report, ok := c.reports[env]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	return report, true
}

// Set stores report for env. A non-positive ttl means DefaultTTL.
func (c *ReportCache) Set(env string, report *models.Report, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.reports[env] = report
	c.expires[env] = c.now().Add(ttl)
}

func (c *ReportCache) Invalidate(env string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.reports, env)
	delete(c.expires, env)
}

func (c *ReportCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reports = make(map[string]*models.Report)
	c.expires = make(map[string]time.Time)
}

func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.reports)
}

// Stats returns the hit and miss counters.
func (c *ReportCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

func (c *ReportCache) cleanExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	for env, expireTime := range c.expires {
		if !now.Before(expireTime) {
			delete(c.reports, env)
			delete(c.expires, env)
		}
	}
}
