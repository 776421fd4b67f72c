package analysis

import (
	"slices"
	"sort"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/util"
)

const attentionPercentile = 95

// RoutesNeedingAttention lists routes above the 95th percentile of request
// time, query count or memory, and routes flagged as outliers.
func RoutesNeedingAttention(routes []models.RouteMetricAggregate, channelStats models.ChannelStats) models.RoutesNeedingAttention {
	result := models.RoutesNeedingAttention{
		SlowRequestTime: []models.AttentionEntry{},
		HighQueryCount:  []models.AttentionEntry{},
		HighMemory:      []models.AttentionEntry{},
		Outliers:        []models.RouteKey{},
	}

	requestStats := channelStats[models.ChannelRequestTime]
	queryStats := channelStats[models.ChannelQueryCount]
	memoryStats := channelStats[models.ChannelMemoryUsage]

	above := func(route models.RouteMetricAggregate, ch models.Channel, s models.DescriptiveStats) (models.AttentionEntry, bool) {
		limit, ok := s.Percentile(attentionPercentile)
		if !ok {
			return models.AttentionEntry{}, false
		}
		v, ok := channelValue(route, ch)
		if !ok || v <= limit {
			return models.AttentionEntry{}, false
		}
		return models.AttentionEntry{Route: route.Key(), Value: v, Percentile: attentionPercentile}, true
	}

	for _, route := range routes {
		if e, ok := above(route, models.ChannelRequestTime, requestStats); ok {
			result.SlowRequestTime = append(result.SlowRequestTime, e)
		}
		if e, ok := above(route, models.ChannelQueryCount, queryStats); ok {
			result.HighQueryCount = append(result.HighQueryCount, e)
		}
		if e, ok := above(route, models.ChannelMemoryUsage, memoryStats); ok {
			result.HighMemory = append(result.HighMemory, e)
		}

		outlier := route.RequestTime != nil && slices.Contains(requestStats.Outliers, util.Round4(*route.RequestTime))
		if !outlier && route.TotalQueries != nil {
			outlier = slices.Contains(queryStats.Outliers, float64(*route.TotalQueries))
		}
		if outlier {
			result.Outliers = append(result.Outliers, route.Key())
		}
	}

	for _, entries := range [][]models.AttentionEntry{result.SlowRequestTime, result.HighQueryCount, result.HighMemory} {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Value > entries[j].Value
		})
	}

	return result
}
