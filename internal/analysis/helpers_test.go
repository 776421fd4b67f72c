package analysis

import (
	"fmt"

	"github.com/genc-murat/routeperf/internal/core/models"
)

func route(name string, requestTime, queryTime *float64, queries *int) models.RouteMetricAggregate {
	return models.RouteMetricAggregate{
		Env:          "prod",
		Name:         name,
		RequestTime:  requestTime,
		QueryTime:    queryTime,
		TotalQueries: queries,
	}
}

func accessRoutes(counts ...int) []models.RouteMetricAggregate {
	routes := make([]models.RouteMetricAggregate, len(counts))
	for i, c := range counts {
		routes[i] = models.RouteMetricAggregate{
			Env:         "prod",
			Name:        fmt.Sprintf("route_%d", i),
			AccessCount: c,
		}
	}
	return routes
}
