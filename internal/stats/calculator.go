// Package stats computes descriptive statistics over one numeric sample set.
package stats

import (
	"math"
	"slices"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/util"
)

// iqrFence is the Tukey multiplier used to flag outliers.
const iqrFence = 1.5

// Compute returns count, central tendency, spread, percentiles, outliers and a
// histogram for values. An empty input yields models.EmptyStats(), whatever
// label and unit say.
//
// Every output except Outliers depends only on the multiset of values.
// Outliers keeps the input order of the flagged values.
func Compute(values []float64, label, unit string) models.DescriptiveStats {
	n := len(values)
	if n == 0 {
		return models.EmptyStats()
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	low, high := sorted[0], sorted[n-1]

	percentiles := make(map[int]float64, len(models.PercentileRanks))
	for _, rank := range models.PercentileRanks {
		percentiles[rank] = util.Round4(Percentile(sorted, float64(rank)))
	}

	outliers := detectOutliers(values, sorted)
	distribution, labels := histogram(sorted, low, high)

	return models.DescriptiveStats{
		Label:         label,
		Unit:          unit,
		Count:         n,
		Mean:          util.Round4(mean),
		Median:        util.Round4(median(sorted)),
		Mode:          util.Round4(mode(sorted)),
		StdDev:        util.Round4(math.Sqrt(variance)),
		Min:           util.Round4(low),
		Max:           util.Round4(high),
		Range:         util.Round4(high - low),
		Percentiles:   percentiles,
		OutliersCount: len(outliers),
		Outliers:      outliers,
		Distribution:  distribution,
		BucketLabels:  labels,
	}
}

// Percentile interpolates linearly between the two sorted values around
// index rank/100*(n-1). sorted must be ascending and non-empty.
func Percentile(sorted []float64, rank float64) float64 {
	index := rank / 100 * float64(len(sorted)-1)
	lower := math.Floor(index)
	upper := math.Ceil(index)
	if lower == upper {
		return sorted[int(lower)]
	}
	weight := index - lower
	return sorted[int(lower)]*(1-weight) + sorted[int(upper)]*weight
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// mode walks runs of equal values; a later run must be strictly longer to
// win, so the smallest value wins ties.
func mode(sorted []float64) float64 {
	best, bestCount := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestCount {
			best, bestCount = sorted[i], j-i
		}
		i = j
	}
	return best
}

func detectOutliers(values, sorted []float64) []float64 {
	q1 := Percentile(sorted, 25)
	q3 := Percentile(sorted, 75)
	iqr := q3 - q1
	lowerBound := q1 - iqrFence*iqr
	upperBound := q3 + iqrFence*iqr

	outliers := []float64{}
	for _, v := range values {
		if v < lowerBound || v > upperBound {
			outliers = append(outliers, util.Round4(v))
		}
	}
	return outliers
}

func histogram(sorted []float64, low, high float64) ([]int, []string) {
	buckets := models.HistogramBuckets
	distribution := make([]int, buckets)
	labels := make([]string, buckets)

	if high == low {
		distribution[0] = len(sorted)
		for i := range labels {
			labels[i] = util.FormatRange(low, high)
		}
		return distribution, labels
	}

	width := (high - low) / float64(buckets)
	for _, v := range sorted {
		idx := int(math.Floor((v - low) / width))
		if idx > buckets-1 {
			idx = buckets - 1
		}
		distribution[idx]++
	}
	for i := range labels {
		labels[i] = util.FormatRange(low+float64(i)*width, low+float64(i+1)*width)
	}
	return distribution, labels
}
