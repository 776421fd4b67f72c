package analysis

import (
	"testing"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("MixedRoutes", func(t *testing.T) {
		routes := []models.RouteMetricAggregate{
			route("a", models.Float(0.5), models.Float(0.1), models.Int(5)),
			route("b", models.Float(1.5), nil, models.Int(15)),
			route("c", nil, models.Float(0.3), nil),
		}
		routes[0].StatusCodes = map[int]int{200: 8, 500: 1}
		routes[1].StatusCodes = map[int]int{200: 2, 404: 3}

		result := Summarize(routes)

		assert.Equal(t, 3, result.TotalRoutes)
		assert.Equal(t, 20, result.TotalQueries)
		assert.InDelta(t, 1.0, result.AvgRequestTime, 1e-9)
		assert.InDelta(t, 0.2, result.AvgQueryTime, 1e-9)
		assert.Equal(t, 1.5, result.MaxRequestTime)
		assert.Equal(t, 0.3, result.MaxQueryTime)
		assert.Equal(t, 15, result.MaxQueries)
		assert.Equal(t, map[int]int{200: 10, 404: 3, 500: 1}, result.StatusCodes)
	})

	t.Run("NoRoutes", func(t *testing.T) {
		result := Summarize(nil)

		assert.Equal(t, 0, result.TotalRoutes)
		assert.Equal(t, 0.0, result.AvgRequestTime)
		assert.Equal(t, 0, result.MaxQueries)
		assert.Empty(t, result.StatusCodes)
	})
}
