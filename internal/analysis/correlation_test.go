package analysis

import (
	"testing"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelate(t *testing.T) {
	t.Run("PerfectLinear", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := make([]float64, len(x))
		for i, v := range x {
			y[i] = 2*v + 1
		}

		result := Correlate(x, y)

		require.NotNil(t, result)
		assert.Equal(t, 1.0, result.Coefficient)
		assert.Equal(t, models.StrengthVeryStrong, result.Strength)
		assert.Equal(t, "Very strong positive", result.Interpretation)
		assert.Equal(t, 5, result.SampleSize)
	})

	t.Run("VeryStrongAlwaysReadsPositive", func(t *testing.T) {
		result := Correlate([]float64{1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1})

		require.NotNil(t, result)
		assert.Equal(t, -1.0, result.Coefficient)
		assert.Equal(t, models.StrengthVeryStrong, result.Strength)
		assert.Equal(t, "Very strong positive", result.Interpretation)
	})

	t.Run("TooFewPairs", func(t *testing.T) {
		assert.Nil(t, Correlate(nil, nil))
		assert.Nil(t, Correlate([]float64{1}, []float64{2}))
		assert.Nil(t, Correlate([]float64{1, 2, 3}, []float64{2}))
	})

	t.Run("ZeroVariance", func(t *testing.T) {
		assert.Nil(t, Correlate([]float64{3, 3, 3}, []float64{1, 2, 3}))
		assert.Nil(t, Correlate([]float64{1, 2, 3}, []float64{7, 7, 7}))
	})

	t.Run("ZeroVarianceNonIntegerConstants", func(t *testing.T) {
		tests := []struct {
			name string
			x    []float64
			y    []float64
		}{
			{"five of 1.1", []float64{1.1, 1.1, 1.1, 1.1, 1.1}, []float64{1, 2, 3, 4, 5}},
			{"three of 0.7", []float64{0.7, 0.7, 0.7}, []float64{1, 2, 3}},
			{"constant y", []float64{1, 2, 3, 4}, []float64{0.3, 0.3, 0.3, 0.3}},
			{"extra x ignored", []float64{0.1, 0.1, 0.1, 9}, []float64{1, 2, 3}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Nil(t, Correlate(tt.x, tt.y))
			})
		}

		for i := 0; i < 300; i++ {
			c := 0.001 + float64(i)*0.01
			for n := 2; n <= 12; n++ {
				x := make([]float64, n)
				y := make([]float64, n)
				for j := range x {
					x[j] = c
					y[j] = float64(j)
				}
				assert.Nil(t, Correlate(x, y), "constant %v, n=%d", c, n)
			}
		}
	})

	t.Run("SmallButRealVariance", func(t *testing.T) {
		result := Correlate([]float64{1.1, 1.1001, 1.1002}, []float64{1, 2, 3})
		if assert.NotNil(t, result) {
			assert.InDelta(t, 1.0, result.Coefficient, 1e-3)
		}
	})

	t.Run("StrengthBuckets", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		tests := []struct {
			name           string
			y              []float64
			coefficient    float64
			strength       models.CorrelationStrength
			interpretation string
		}{
			{"strong positive", []float64{1, 3, 2, 5, 4}, 0.8, models.StrengthStrong, "Strong positive"},
			{"strong negative", []float64{4, 5, 2, 3, 1}, -0.8, models.StrengthStrong, "Strong negative"},
			{"moderate positive", []float64{1, 2, 5, 4, 3}, 0.6, models.StrengthModerate, "Moderate positive"},
			{"moderate negative", []float64{3, 4, 5, 2, 1}, -0.6, models.StrengthModerate, "Moderate negative"},
			{"weak positive", []float64{1, 3, 4, 5, 2}, 0.4, models.StrengthWeak, "Weak positive"},
			{"weak negative", []float64{2, 5, 4, 3, 1}, -0.4, models.StrengthWeak, "Weak negative"},
			{"none", []float64{1, 4, 5, 2, 3}, 0.2, models.StrengthNone, "No correlation"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result := Correlate(x, tt.y)
				require.NotNil(t, result)
				assert.InDelta(t, tt.coefficient, result.Coefficient, 1e-9)
				assert.Equal(t, tt.strength, result.Strength)
				assert.Equal(t, tt.interpretation, result.Interpretation)
			})
		}
	})
}

func TestAnalyzeCorrelations(t *testing.T) {
	t.Run("NoRoutes", func(t *testing.T) {
		result := AnalyzeCorrelations(nil)

		require.Len(t, result, 5)
		for pair, c := range result {
			assert.Nil(t, c, string(pair))
		}
	})

	t.Run("PairsKeepOnlyRoutesWithBothMetrics", func(t *testing.T) {
		routes := []models.RouteMetricAggregate{
			route("a", models.Float(0.5), models.Float(0.1), models.Int(5)),
			route("b", models.Float(1.0), nil, models.Int(12)),
			route("c", models.Float(2.0), models.Float(0.4), nil),
			route("d", nil, models.Float(0.9), models.Int(40)),
			route("e", models.Float(1.5), models.Float(0.3), models.Int(20)),
		}

		result := AnalyzeCorrelations(routes)

		rtQt := result[models.PairRequestTimeQueryTime]
		require.NotNil(t, rtQt)
		assert.Equal(t, 3, rtQt.SampleSize)
		assert.Greater(t, rtQt.Coefficient, 0.9)

		rtQc := result[models.PairRequestTimeQueryCount]
		require.NotNil(t, rtQc)
		assert.Equal(t, 3, rtQc.SampleSize)

		qtQc := result[models.PairQueryTimeQueryCount]
		require.NotNil(t, qtQc)
		assert.Equal(t, 3, qtQc.SampleSize)

		assert.Nil(t, result[models.PairMemoryRequestTime])

		// every access count is zero
		assert.Nil(t, result[models.PairAccessCountRequest])
	})

	t.Run("AccessCountAgainstRequestTime", func(t *testing.T) {
		routes := accessRoutes(10, 20, 30)
		for i := range routes {
			routes[i].RequestTime = models.Float(float64(i + 1))
		}

		result := AnalyzeCorrelations(routes)[models.PairAccessCountRequest]

		require.NotNil(t, result)
		assert.Equal(t, 1.0, result.Coefficient)
		assert.Equal(t, 3, result.SampleSize)
	})
}
