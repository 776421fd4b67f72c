package stats

import (
	"math/rand"
	"testing"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEmpty(t *testing.T) {
	t.Run("NilInput", func(t *testing.T) {
		assert.Equal(t, models.EmptyStats(), Compute(nil, "Request Time", "s"))
	})

	t.Run("LabelAndUnitAreDropped", func(t *testing.T) {
		result := Compute([]float64{}, "Memory Usage", "MB")
		assert.Equal(t, "", result.Label)
		assert.Equal(t, "", result.Unit)
		assert.Equal(t, 0, result.Count)
		assert.Empty(t, result.Percentiles)
		assert.NotNil(t, result.Percentiles)
		assert.Empty(t, result.Outliers)
		assert.Empty(t, result.Distribution)
		assert.Empty(t, result.BucketLabels)
	})

	t.Run("FreshValueEachCall", func(t *testing.T) {
		first := Compute(nil, "", "")
		first.Percentiles[50] = 1
		second := Compute(nil, "", "")
		assert.Empty(t, second.Percentiles)
	})
}

func TestComputeSingleValue(t *testing.T) {
	result := Compute([]float64{0.75}, "Request Time", "s")

	assert.Equal(t, "Request Time", result.Label)
	assert.Equal(t, "s", result.Unit)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 0.75, result.Mean)
	assert.Equal(t, 0.75, result.Median)
	assert.Equal(t, 0.75, result.Mode)
	assert.Equal(t, 0.75, result.Min)
	assert.Equal(t, 0.75, result.Max)
	assert.Equal(t, 0.0, result.Range)
	assert.Equal(t, 0.0, result.StdDev)
	for _, rank := range models.PercentileRanks {
		assert.Equal(t, 0.75, result.Percentiles[rank], "p%d", rank)
	}
	assert.Equal(t, 0, result.OutliersCount)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, result.Distribution)
	assert.Equal(t, "0.75–0.75", result.BucketLabels[0])
}

func TestComputeConstantValues(t *testing.T) {
	result := Compute([]float64{5, 5, 5, 5, 5}, "", "")

	assert.Equal(t, 5, result.Count)
	assert.Equal(t, 0.0, result.StdDev)
	assert.Equal(t, 0.0, result.Range)
	assert.Equal(t, 5.0, result.Mode)
	assert.Equal(t, []int{5, 0, 0, 0, 0, 0, 0, 0, 0, 0}, result.Distribution)
	assert.Len(t, result.BucketLabels, models.HistogramBuckets)
	assert.Equal(t, 0, result.OutliersCount)
}

func TestComputeWithOutlier(t *testing.T) {
	result := Compute([]float64{1, 2, 3, 4, 5, 100}, "Query Count", "")

	assert.Equal(t, 6, result.Count)
	assert.InDelta(t, 19.1667, result.Mean, 1e-9)
	assert.InDelta(t, 3.5, result.Median, 1e-9)
	assert.InDelta(t, 1.0, result.Mode, 1e-9)
	assert.InDelta(t, 36.1728, result.StdDev, 1e-9)
	assert.InDelta(t, 99.0, result.Range, 1e-9)

	assert.InDelta(t, 2.25, result.Percentiles[25], 1e-9)
	assert.InDelta(t, 3.5, result.Percentiles[50], 1e-9)
	assert.InDelta(t, 4.75, result.Percentiles[75], 1e-9)
	assert.InDelta(t, 52.5, result.Percentiles[90], 1e-9)
	assert.InDelta(t, 76.25, result.Percentiles[95], 1e-9)
	assert.InDelta(t, 95.25, result.Percentiles[99], 1e-9)

	assert.Equal(t, 1, result.OutliersCount)
	assert.Contains(t, result.Outliers, 100.0)

	assert.Equal(t, []int{5, 0, 0, 0, 0, 0, 0, 0, 0, 1}, result.Distribution)
	assert.Equal(t, "1–10.9", result.BucketLabels[0])
	assert.Equal(t, "90.1–100", result.BucketLabels[9])
}

func TestComputeOutliersKeepInputOrder(t *testing.T) {
	result := Compute([]float64{100, 1, 2, 3, 4, 5, -50}, "", "")

	assert.Equal(t, []float64{100, -50}, result.Outliers)
	assert.Equal(t, 2, result.OutliersCount)
}

func TestComputeMode(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"single most frequent", []float64{2, 7, 2}, 2},
		{"tie picks smallest", []float64{3, 1, 3, 1, 2}, 1},
		{"all distinct picks smallest", []float64{9, 4, 6}, 4},
		{"later run longer", []float64{1, 8, 8, 8, 2, 2}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compute(tt.values, "", "").Mode)
		})
	}
}

func TestComputeMedian(t *testing.T) {
	assert.Equal(t, 3.0, Compute([]float64{5, 1, 3}, "", "").Median)
	assert.Equal(t, 2.5, Compute([]float64{4, 1, 3, 2}, "", "").Median)
}

func TestComputeHistogram(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	result := Compute(values, "", "")

	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 2}, result.Distribution)
	assert.Equal(t, "0–1", result.BucketLabels[0])
	assert.Equal(t, "9–10", result.BucketLabels[9])

	total := 0
	for _, c := range result.Distribution {
		total += c
	}
	assert.Equal(t, len(values), total)
}

func TestComputeOrderIndependent(t *testing.T) {
	values := []float64{0.12, 3.4, 0.5, 0.5, 7.25, 1.1, 0.98, 2.2, 0.5, 15.75}
	shuffled := append([]float64(nil), values...)
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	a := Compute(values, "", "")
	b := Compute(shuffled, "", "")

	assert.Equal(t, a.Mean, b.Mean)
	assert.Equal(t, a.Median, b.Median)
	assert.Equal(t, a.Mode, b.Mode)
	assert.Equal(t, a.StdDev, b.StdDev)
	assert.Equal(t, a.Percentiles, b.Percentiles)
	assert.Equal(t, a.Distribution, b.Distribution)
	assert.Equal(t, a.BucketLabels, b.BucketLabels)
	assert.ElementsMatch(t, a.Outliers, b.Outliers)
}

func TestComputePercentilesAreOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(40)
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.Float64() * 10
		}

		result := Compute(values, "", "")
		require.Len(t, result.Percentiles, len(models.PercentileRanks))

		prev := result.Min
		for _, rank := range models.PercentileRanks {
			p := result.Percentiles[rank]
			assert.LessOrEqual(t, prev, p, "p%d below previous", rank)
			prev = p
		}
		assert.LessOrEqual(t, prev, result.Max)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	assert.Equal(t, 10.0, Percentile(sorted, 0))
	assert.Equal(t, 40.0, Percentile(sorted, 100))
	assert.InDelta(t, 25.0, Percentile(sorted, 50), 1e-9)
	assert.InDelta(t, 17.5, Percentile(sorted, 25), 1e-9)
}
