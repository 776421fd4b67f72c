// Package analysis turns per-route metric aggregates into statistics,
// correlations, efficiency and traffic breakdowns, and recommendations.
package analysis

import (
	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/stats"
)

type channelInfo struct {
	label string
	unit  string
}

var channelInfos = map[models.Channel]channelInfo{
	models.ChannelRequestTime: {"Request Time", "s"},
	models.ChannelQueryTime:   {"Query Time", "s"},
	models.ChannelQueryCount:  {"Query Count", ""},
	models.ChannelMemoryUsage: {"Memory Usage", "MB"},
	models.ChannelAccessCount: {"Access Count", ""},
}

// channelValue extracts one channel from a route. Memory is reported in MB.
// AccessCount is always present.
func channelValue(route models.RouteMetricAggregate, ch models.Channel) (float64, bool) {
	switch ch {
	case models.ChannelRequestTime:
		if route.RequestTime == nil {
			return 0, false
		}
		return *route.RequestTime, true
	case models.ChannelQueryTime:
		if route.QueryTime == nil {
			return 0, false
		}
		return *route.QueryTime, true
	case models.ChannelQueryCount:
		if route.TotalQueries == nil {
			return 0, false
		}
		return float64(*route.TotalQueries), true
	case models.ChannelMemoryUsage:
		return route.MemoryMB()
	case models.ChannelAccessCount:
		return float64(route.AccessCount), true
	}
	return 0, false
}

func channelValues(routes []models.RouteMetricAggregate, ch models.Channel) []float64 {
	values := make([]float64, 0, len(routes))
	for _, route := range routes {
		if v, ok := channelValue(route, ch); ok {
			values = append(values, v)
		}
	}
	return values
}

// Aggregate computes descriptive statistics for every channel. Each channel
// skips the routes where its own metric is absent.
func Aggregate(routes []models.RouteMetricAggregate) models.ChannelStats {
	result := make(models.ChannelStats, len(models.Channels))
	for _, ch := range models.Channels {
		info := channelInfos[ch]
		result[ch] = stats.Compute(channelValues(routes, ch), info.label, info.unit)
	}
	return result
}
