package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRecord = errors.New("invalid access record")
	ErrStoreClosed   = errors.New("record store is closed")
	ErrLockTimeout   = errors.New("timed out waiting for record store lock")
)

// AccessRecord is one sampled request as produced by the request lifecycle.
type AccessRecord struct {
	RequestID    string    `json:"request_id"`
	Env          string    `json:"env"`
	Route        string    `json:"route"`
	HTTPMethod   string    `json:"http_method,omitempty"`
	StatusCode   *int      `json:"status_code"`
	ResponseTime *float64  `json:"response_time"`
	QueryTime    *float64  `json:"query_time"`
	TotalQueries *int      `json:"total_queries"`
	MemoryUsage  *int64    `json:"memory_usage"`
	AccessedAt   time.Time `json:"accessed_at"`
}

func (r AccessRecord) Key() RouteKey {
	return RouteKey{Env: r.Env, Name: r.Route}
}

func (r AccessRecord) Validate() error {
	if strings.TrimSpace(r.Env) == "" {
		return fmt.Errorf("%w: env is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Route) == "" {
		return fmt.Errorf("%w: route is required", ErrInvalidRecord)
	}
	return nil
}
