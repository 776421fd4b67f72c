package analysis

import (
	"math"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/util"
)

var correlationPairs = []struct {
	pair models.CorrelationPair
	x, y models.Channel
}{
	{models.PairRequestTimeQueryTime, models.ChannelRequestTime, models.ChannelQueryTime},
	{models.PairRequestTimeQueryCount, models.ChannelRequestTime, models.ChannelQueryCount},
	{models.PairQueryTimeQueryCount, models.ChannelQueryTime, models.ChannelQueryCount},
	{models.PairMemoryRequestTime, models.ChannelMemoryUsage, models.ChannelRequestTime},
	{models.PairAccessCountRequest, models.ChannelAccessCount, models.ChannelRequestTime},
}

// AnalyzeCorrelations correlates the fixed channel pairs. A route joins a
// pair only when it carries both metrics.
func AnalyzeCorrelations(routes []models.RouteMetricAggregate) models.Correlations {
	result := make(models.Correlations, len(correlationPairs))
	for _, p := range correlationPairs {
		x, y := pairedValues(routes, p.x, p.y)
		result[p.pair] = Correlate(x, y)
	}
	return result
}

func pairedValues(routes []models.RouteMetricAggregate, xCh, yCh models.Channel) ([]float64, []float64) {
	x := make([]float64, 0, len(routes))
	y := make([]float64, 0, len(routes))
	for _, route := range routes {
		xv, xok := channelValue(route, xCh)
		yv, yok := channelValue(route, yCh)
		if xok && yok {
			x = append(x, xv)
			y = append(y, yv)
		}
	}
	return x, y
}

// Correlate returns the Pearson coefficient of x and y paired by index, or nil
// with fewer than two pairs or zero variance on either side.
func Correlate(x, y []float64) *models.CorrelationResult {
	n := min(len(x), len(y))
	if n < 2 {
		return nil
	}

	x, y = x[:n], y[:n]
	if constant(x) || constant(y) {
		return nil
	}

	fn := float64(n)
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/fn, sumY/fn

	var sxy, sxx, syy, scaleX, scaleY float64
	for i := 0; i < n; i++ {
		dx, dy := x[i]-meanX, y[i]-meanY
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
		scaleX += x[i] * x[i]
		scaleY += y[i] * y[i]
	}
	if sxx <= varianceTolerance*scaleX || syy <= varianceTolerance*scaleY {
		return nil
	}

	coefficient := sxy / math.Sqrt(sxx*syy)
	strength, interpretation := interpretCorrelation(coefficient)

	return &models.CorrelationResult{
		Coefficient:    util.Round4(coefficient),
		Strength:       strength,
		Interpretation: interpretation,
		SampleSize:     n,
	}
}

// varianceTolerance is the centred sum of squares, relative to the raw sum of
// squares, below which a side counts as having no variance.
const varianceTolerance = 1e-12

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func interpretCorrelation(c float64) (models.CorrelationStrength, string) {
	abs := math.Abs(c)
	sign := func(positive bool) string {
		if positive {
			return "positive"
		}
		return "negative"
	}

	switch {
	case abs >= 0.9:
		// The very strong branch tests the magnitude, not the sign.
		return models.StrengthVeryStrong, "Very strong " + sign(abs > 0)
	case abs >= 0.7:
		return models.StrengthStrong, "Strong " + sign(c > 0)
	case abs >= 0.5:
		return models.StrengthModerate, "Moderate " + sign(c > 0)
	case abs >= 0.3:
		return models.StrengthWeak, "Weak " + sign(c > 0)
	}
	return models.StrengthNone, "No correlation"
}
