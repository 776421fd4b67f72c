// Package rollup materializes per-route aggregates from raw access records.
package rollup

import (
	"sort"

	"github.com/genc-murat/routeperf/internal/core/models"
)

// Build groups records by environment and route. Each metric keeps its
// maximum non-null value, AccessCount counts records and StatusCodes counts
// every recorded status. The result is ordered by env, then route name.
func Build(records []models.AccessRecord) []models.RouteMetricAggregate {
	index := make(map[models.RouteKey]int)
	var routes []models.RouteMetricAggregate

	for _, rec := range records {
		key := rec.Key()
		i, exists := index[key]
		if !exists {
			i = len(routes)
			index[key] = i
			routes = append(routes, models.RouteMetricAggregate{
				Env:         rec.Env,
				Name:        rec.Route,
				HTTPMethod:  rec.HTTPMethod,
				StatusCodes: map[int]int{},
			})
		}
		merge(&routes[i], rec)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Env != routes[j].Env {
			return routes[i].Env < routes[j].Env
		}
		return routes[i].Name < routes[j].Name
	})

	if routes == nil {
		return []models.RouteMetricAggregate{}
	}
	return routes
}

// ForEnv builds aggregates for the records of a single environment.
func ForEnv(records []models.AccessRecord, env string) []models.RouteMetricAggregate {
	filtered := make([]models.AccessRecord, 0, len(records))
	for _, rec := range records {
		if rec.Env == env {
			filtered = append(filtered, rec)
		}
	}
	return Build(filtered)
}

// Environments returns the distinct environments present in records, sorted.
func Environments(records []models.AccessRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		seen[rec.Env] = struct{}{}
	}
	envs := make([]string, 0, len(seen))
	for env := range seen {
		envs = append(envs, env)
	}
	sort.Strings(envs)
	return envs
}

func merge(route *models.RouteMetricAggregate, rec models.AccessRecord) {
	route.AccessCount++

	if rec.ResponseTime != nil {
		route.RequestTime = maxFloat(route.RequestTime, *rec.ResponseTime)
	}
	if rec.QueryTime != nil {
		route.QueryTime = maxFloat(route.QueryTime, *rec.QueryTime)
	}
	if rec.TotalQueries != nil && (route.TotalQueries == nil || *rec.TotalQueries > *route.TotalQueries) {
		route.TotalQueries = models.Int(*rec.TotalQueries)
	}
	if rec.MemoryUsage != nil && (route.MemoryUsage == nil || *rec.MemoryUsage > *route.MemoryUsage) {
		route.MemoryUsage = models.Int64(*rec.MemoryUsage)
	}
	if rec.StatusCode != nil {
		route.StatusCodes[*rec.StatusCode]++
	}
	if rec.AccessedAt.After(route.LastAccessedAt) {
		route.LastAccessedAt = rec.AccessedAt
	}
	if route.HTTPMethod == "" {
		route.HTTPMethod = rec.HTTPMethod
	}
}

func maxFloat(current *float64, v float64) *float64 {
	if current == nil || v > *current {
		return models.Float(v)
	}
	return current
}
