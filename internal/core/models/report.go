package models

import "time"

type RecommendationType string

const (
	RecommendationQueryOptimization   RecommendationType = "query_optimization"
	RecommendationPerformance         RecommendationType = "performance"
	RecommendationMemory              RecommendationType = "memory"
	RecommendationOutliers            RecommendationType = "outliers"
	RecommendationTrafficDistribution RecommendationType = "traffic_distribution"
	RecommendationQueryBottleneck     RecommendationType = "query_bottleneck"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Priority    Priority           `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Action      string             `json:"action"`
}

type BottleneckRoute struct {
	Route       RouteKey `json:"route"`
	QueryRatio  float64  `json:"query_ratio"`
	RequestTime float64  `json:"request_time"`
	QueryTime   *float64 `json:"query_time"`
	QueryCount  *int     `json:"query_count"`
}

type EfficientRoute struct {
	Route       RouteKey `json:"route"`
	RequestTime float64  `json:"request_time"`
	QueryCount  *int     `json:"query_count"`
}

type InefficientRoute struct {
	Route       RouteKey `json:"route"`
	RequestTime float64  `json:"request_time"`
	QueryCount  *int     `json:"query_count"`
	QueryTime   *float64 `json:"query_time"`
}

type Efficiency struct {
	AvgQueryRatio         *float64           `json:"avg_query_ratio"`
	EfficientRoutes       []EfficientRoute   `json:"efficient_routes"`
	InefficientRoutes     []InefficientRoute `json:"inefficient_routes"`
	QueryBottleneckRoutes []BottleneckRoute  `json:"query_bottleneck_routes"`
}

type HotPath struct {
	Route       RouteKey `json:"route"`
	AccessCount int      `json:"access_count"`
	Percentage  float64  `json:"percentage"`
}

type ColdPath struct {
	Route       RouteKey `json:"route"`
	AccessCount int      `json:"access_count"`
}

type TrafficDistribution struct {
	TotalAccesses        int        `json:"total_accesses"`
	HotPaths             []HotPath  `json:"hot_paths"`
	ColdPaths            []ColdPath `json:"cold_paths"`
	TrafficConcentration *float64   `json:"traffic_concentration"`
}

type AttentionEntry struct {
	Route      RouteKey `json:"route"`
	Value      float64  `json:"value"`
	Percentile int      `json:"percentile"`
}

type RoutesNeedingAttention struct {
	SlowRequestTime []AttentionEntry `json:"slow_request_time"`
	HighQueryCount  []AttentionEntry `json:"high_query_count"`
	HighMemory      []AttentionEntry `json:"high_memory"`
	Outliers        []RouteKey       `json:"outliers"`
}

type Summary struct {
	TotalRoutes    int         `json:"total_routes"`
	TotalQueries   int         `json:"total_queries"`
	AvgRequestTime float64     `json:"avg_request_time"`
	AvgQueryTime   float64     `json:"avg_query_time"`
	MaxRequestTime float64     `json:"max_request_time"`
	MaxQueryTime   float64     `json:"max_query_time"`
	MaxQueries     int         `json:"max_queries"`
	StatusCodes    map[int]int `json:"status_codes"`
}

// Report is the full analysis of one environment.
type Report struct {
	ID              string                 `json:"id"`
	Env             string                 `json:"env"`
	GeneratedAt     time.Time              `json:"generated_at"`
	TotalRoutes     int                    `json:"total_routes"`
	Summary         Summary                `json:"summary"`
	Stats           ChannelStats           `json:"stats"`
	Correlations    Correlations           `json:"correlations"`
	Efficiency      Efficiency             `json:"efficiency"`
	Traffic         TrafficDistribution    `json:"traffic"`
	Attention       RoutesNeedingAttention `json:"attention"`
	Recommendations []Recommendation       `json:"recommendations"`
}
