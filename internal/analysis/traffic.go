package analysis

import (
	"slices"
	"sort"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/util"
)

// pathShareDivisor selects one tenth of the routes, rounded up.
const pathShareDivisor = 10

// AnalyzeTraffic ranks routes by access count and reports the busiest and
// quietest tenth, plus the share of all traffic the busiest tenth receives.
func AnalyzeTraffic(routes []models.RouteMetricAggregate) models.TrafficDistribution {
	result := models.TrafficDistribution{
		HotPaths:  []models.HotPath{},
		ColdPaths: []models.ColdPath{},
	}
	if len(routes) == 0 {
		return result
	}

	for _, route := range routes {
		result.TotalAccesses += route.AccessCount
	}

	sorted := slices.Clone(routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AccessCount > sorted[j].AccessCount
	})

	size := max(1, (len(sorted)+pathShareDivisor-1)/pathShareDivisor)

	hotAccesses := 0
	for _, route := range sorted[:size] {
		hotAccesses += route.AccessCount
		percentage := 0.0
		if result.TotalAccesses > 0 {
			percentage = util.Round2(float64(route.AccessCount) / float64(result.TotalAccesses) * 100)
		}
		result.HotPaths = append(result.HotPaths, models.HotPath{
			Route:       route.Key(),
			AccessCount: route.AccessCount,
			Percentage:  percentage,
		})
	}

	for _, route := range sorted[len(sorted)-size:] {
		result.ColdPaths = append(result.ColdPaths, models.ColdPath{
			Route:       route.Key(),
			AccessCount: route.AccessCount,
		})
	}

	if result.TotalAccesses > 0 {
		concentration := util.Round2(float64(hotAccesses) / float64(result.TotalAccesses) * 100)
		result.TrafficConcentration = &concentration
	}

	return result
}
