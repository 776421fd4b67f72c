package models

import (
	"fmt"
	"time"
)

const bytesPerMB = 1024 * 1024

// RouteKey identifies a route inside one environment.
type RouteKey struct {
	Env  string `json:"env"`
	Name string `json:"name"`
}

func (k RouteKey) String() string {
	return fmt.Sprintf("%s:%s", k.Env, k.Name)
}

// RouteMetricAggregate holds the worst observed value of every metric recorded
// for a route. AccessCount is a sum and is never absent.
type RouteMetricAggregate struct {
	Env            string      `json:"env"`
	Name           string      `json:"name"`
	HTTPMethod     string      `json:"http_method,omitempty"`
	RequestTime    *float64    `json:"request_time"`
	QueryTime      *float64    `json:"query_time"`
	TotalQueries   *int        `json:"total_queries"`
	MemoryUsage    *int64      `json:"memory_usage"`
	AccessCount    int         `json:"access_count"`
	StatusCodes    map[int]int `json:"status_codes,omitempty"`
	LastAccessedAt time.Time   `json:"last_accessed_at,omitempty"`
}

func (r RouteMetricAggregate) Key() RouteKey {
	return RouteKey{Env: r.Env, Name: r.Name}
}

// MemoryMB converts MemoryUsage to megabytes.
func (r RouteMetricAggregate) MemoryMB() (float64, bool) {
	if r.MemoryUsage == nil {
		return 0, false
	}
	return float64(*r.MemoryUsage) / bytesPerMB, true
}

func (r RouteMetricAggregate) StatusCodeCount(code int) int {
	return r.StatusCodes[code]
}

func (r RouteMetricAggregate) TotalResponses() int {
	total := 0
	for _, n := range r.StatusCodes {
		total += n
	}
	return total
}

// StatusCodeRatio returns the share of responses with the given code as a
// percentage.
func (r RouteMetricAggregate) StatusCodeRatio(code int) float64 {
	total := r.TotalResponses()
	if total == 0 {
		return 0
	}
	return float64(r.StatusCodes[code]) / float64(total) * 100
}

func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }

func Int64(v int64) *int64 { return &v }
