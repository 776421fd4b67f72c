package util

import (
	"fmt"
	"slices"
)

func ValidateSamplingRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("sampling rate must be within [0,1], got %v", rate)
	}
	return nil
}

// ValidateEnv accepts any env when allowed is empty.
func ValidateEnv(env string, allowed []string) error {
	if env == "" {
		return fmt.Errorf("no environment specified")
	}
	if len(allowed) > 0 && !slices.Contains(allowed, env) {
		return fmt.Errorf("environment %q is not allowed", env)
	}
	return nil
}
