package analysis

import (
	"github.com/genc-murat/routeperf/internal/core/models"
)

// Summarize reports totals, averages and maxima across routes. Averages and
// maxima only consider routes that carry the metric.
func Summarize(routes []models.RouteMetricAggregate) models.Summary {
	summary := models.Summary{
		TotalRoutes: len(routes),
		StatusCodes: map[int]int{},
	}

	var requestSum, querySum float64
	var requestCount, queryCount int

	for _, route := range routes {
		if route.RequestTime != nil {
			requestSum += *route.RequestTime
			requestCount++
			summary.MaxRequestTime = max(summary.MaxRequestTime, *route.RequestTime)
		}
		if route.QueryTime != nil {
			querySum += *route.QueryTime
			queryCount++
			summary.MaxQueryTime = max(summary.MaxQueryTime, *route.QueryTime)
		}
		if route.TotalQueries != nil {
			summary.TotalQueries += *route.TotalQueries
			summary.MaxQueries = max(summary.MaxQueries, *route.TotalQueries)
		}
		for code, n := range route.StatusCodes {
			summary.StatusCodes[code] += n
		}
	}

	if requestCount > 0 {
		summary.AvgRequestTime = requestSum / float64(requestCount)
	}
	if queryCount > 0 {
		summary.AvgQueryTime = querySum / float64(queryCount)
	}

	return summary
}
