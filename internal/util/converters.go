package util

import (
	"math"
	"strconv"
)

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Round rounds f to the given number of decimal places, halves away from zero.
func Round(f float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}

func Round2(f float64) float64 {
	return Round(f, 2)
}

func Round4(f float64) float64 {
	return Round(f, 4)
}

// FormatRange renders a bucket label such as "0.5–1.25", bounds rounded to 2dp.
func FormatRange(lo, hi float64) string {
	return FormatFloat(Round2(lo)) + "–" + FormatFloat(Round2(hi))
}
