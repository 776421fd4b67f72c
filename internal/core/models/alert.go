package models

type AlertType string

const (
	AlertRequestTime AlertType = "request_time"
	AlertQueryCount  AlertType = "query_count"
	AlertMemoryUsage AlertType = "memory_usage"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type Alert struct {
	Type      AlertType `json:"type"`
	Severity  Severity  `json:"severity"`
	Route     RouteKey  `json:"route"`
	Message   string    `json:"message"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
}

// AlertThresholds are the per-request warning and critical limits. Memory
// values are megabytes.
type AlertThresholds struct {
	RequestTimeWarning  float64 `yaml:"request_time_warning"`
	RequestTimeCritical float64 `yaml:"request_time_critical"`
	QueryCountWarning   int     `yaml:"query_count_warning"`
	QueryCountCritical  int     `yaml:"query_count_critical"`
	MemoryUsageWarning  float64 `yaml:"memory_usage_warning"`
	MemoryUsageCritical float64 `yaml:"memory_usage_critical"`
}

var DefaultAlertThresholds = AlertThresholds{
	RequestTimeWarning:  0.5,
	RequestTimeCritical: 1.0,
	QueryCountWarning:   20,
	QueryCountCritical:  50,
	MemoryUsageWarning:  20.0,
	MemoryUsageCritical: 50.0,
}
