package analysis

import (
	"sort"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/util"
)

const (
	efficiencyListLimit = 10

	bottleneckRatio     = 80.0
	bottleneckQueryTime = 0.1

	efficientRequestTime = 0.2
	efficientQueryCount  = 10

	inefficientRequestTime = 1.0
	inefficientQueryCount  = 50
)

// AnalyzeEfficiency buckets routes by how their request time relates to query
// time and query count. Routes without a positive request time are skipped.
func AnalyzeEfficiency(routes []models.RouteMetricAggregate) models.Efficiency {
	result := models.Efficiency{
		EfficientRoutes:       []models.EfficientRoute{},
		InefficientRoutes:     []models.InefficientRoute{},
		QueryBottleneckRoutes: []models.BottleneckRoute{},
	}

	var ratioSum float64
	var ratioCount int

	for _, route := range routes {
		if route.RequestTime == nil || *route.RequestTime <= 0 {
			continue
		}
		requestTime := *route.RequestTime

		queryRatio := 0.0
		if route.QueryTime != nil && *route.QueryTime > 0 {
			queryRatio = *route.QueryTime / requestTime * 100
			ratioSum += queryRatio
			ratioCount++
		}

		if queryRatio > bottleneckRatio && route.QueryTime != nil && *route.QueryTime > bottleneckQueryTime {
			result.QueryBottleneckRoutes = append(result.QueryBottleneckRoutes, models.BottleneckRoute{
				Route:       route.Key(),
				QueryRatio:  util.Round2(queryRatio),
				RequestTime: requestTime,
				QueryTime:   route.QueryTime,
				QueryCount:  route.TotalQueries,
			})
		}

		if requestTime < efficientRequestTime && (route.TotalQueries == nil || *route.TotalQueries < efficientQueryCount) {
			result.EfficientRoutes = append(result.EfficientRoutes, models.EfficientRoute{
				Route:       route.Key(),
				RequestTime: requestTime,
				QueryCount:  route.TotalQueries,
			})
		}

		if requestTime > inefficientRequestTime || (route.TotalQueries != nil && *route.TotalQueries > inefficientQueryCount) {
			result.InefficientRoutes = append(result.InefficientRoutes, models.InefficientRoute{
				Route:       route.Key(),
				RequestTime: requestTime,
				QueryCount:  route.TotalQueries,
				QueryTime:   route.QueryTime,
			})
		}
	}

	if ratioCount > 0 {
		avg := util.Round2(ratioSum / float64(ratioCount))
		result.AvgQueryRatio = &avg
	}

	sort.SliceStable(result.QueryBottleneckRoutes, func(i, j int) bool {
		return result.QueryBottleneckRoutes[i].QueryRatio > result.QueryBottleneckRoutes[j].QueryRatio
	})
	sort.SliceStable(result.InefficientRoutes, func(i, j int) bool {
		return result.InefficientRoutes[i].RequestTime > result.InefficientRoutes[j].RequestTime
	})

	result.EfficientRoutes = truncate(result.EfficientRoutes, efficiencyListLimit)
	result.InefficientRoutes = truncate(result.InefficientRoutes, efficiencyListLimit)
	result.QueryBottleneckRoutes = truncate(result.QueryBottleneckRoutes, efficiencyListLimit)

	return result
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
