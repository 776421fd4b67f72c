package util

import (
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"positive integer", 42.0, "42"},
		{"negative integer", -42.0, "-42"},
		{"positive decimal", 3.14159, "3.14159"},
		{"negative decimal", -3.14159, "-3.14159"},
		{"zero", 0.0, "0"},
		{"large number", 1234567.89, "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatFloat(tt.input)
			if result != tt.expected {
				t.Errorf("FormatFloat(%f) = %s; want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		places   int
		expected float64
	}{
		{"four places", 0.123456, 4, 0.1235},
		{"two places", 66.666666, 2, 66.67},
		{"half away from zero", 2.5, 0, 3},
		{"negative half", -2.5, 0, -3},
		{"already rounded", 1.5, 4, 1.5},
		{"zero", 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input, tt.places)
			if result != tt.expected {
				t.Errorf("Round(%f, %d) = %v; want %v", tt.input, tt.places, result, tt.expected)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		expected string
	}{
		{"integers", 1, 10.9, "1–10.9"},
		{"rounded bounds", 0.123, 0.456, "0.12–0.46"},
		{"zero width", 5, 5, "5–5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatRange(tt.lo, tt.hi)
			if result != tt.expected {
				t.Errorf("FormatRange(%v, %v) = %s; want %s", tt.lo, tt.hi, result, tt.expected)
			}
		})
	}
}
