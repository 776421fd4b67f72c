// Package alert checks recorded requests against warning and critical limits.
package alert

import (
	"fmt"

	"github.com/genc-murat/routeperf/internal/core/models"
)

const bytesPerMB = 1024 * 1024

type Evaluator struct {
	enabled    bool
	thresholds models.AlertThresholds
}

func NewEvaluator(enabled bool, thresholds models.AlertThresholds) *Evaluator {
	return &Evaluator{enabled: enabled, thresholds: thresholds}
}

func (e *Evaluator) Enabled() bool {
	return e != nil && e.enabled
}

// Evaluate returns at most one alert per metric, critical taking precedence
// over warning. Absent metrics are skipped.
func (e *Evaluator) Evaluate(rec models.AccessRecord) []models.Alert {
	if !e.Enabled() {
		return nil
	}

	name := rec.Route
	if name == "" {
		name = "Unknown"
	}
	t := e.thresholds
	var alerts []models.Alert

	if rec.ResponseTime != nil {
		v := *rec.ResponseTime
		if sev, limit, ok := classify(v, t.RequestTimeWarning, t.RequestTimeCritical); ok {
			alerts = append(alerts, models.Alert{
				Type:      models.AlertRequestTime,
				Severity:  sev,
				Route:     rec.Key(),
				Message:   fmt.Sprintf("%s: Route %q has request time of %.4fs (threshold: %.2fs)", prefix(sev), name, v, limit),
				Value:     v,
				Threshold: limit,
			})
		}
	}

	if rec.TotalQueries != nil {
		v := *rec.TotalQueries
		if sev, limit, ok := classify(float64(v), float64(t.QueryCountWarning), float64(t.QueryCountCritical)); ok {
			alerts = append(alerts, models.Alert{
				Type:      models.AlertQueryCount,
				Severity:  sev,
				Route:     rec.Key(),
				Message:   fmt.Sprintf("%s: Route %q has %d queries (threshold: %d)", prefix(sev), name, v, int(limit)),
				Value:     float64(v),
				Threshold: limit,
			})
		}
	}

	if rec.MemoryUsage != nil {
		mb := float64(*rec.MemoryUsage) / bytesPerMB
		if sev, limit, ok := classify(mb, t.MemoryUsageWarning, t.MemoryUsageCritical); ok {
			alerts = append(alerts, models.Alert{
				Type:      models.AlertMemoryUsage,
				Severity:  sev,
				Route:     rec.Key(),
				Message:   fmt.Sprintf("%s: Route %q uses %.2f MB of memory (threshold: %.2f MB)", prefix(sev), name, mb, limit),
				Value:     mb,
				Threshold: limit,
			})
		}
	}

	return alerts
}

func classify(v, warning, critical float64) (models.Severity, float64, bool) {
	switch {
	case v >= critical:
		return models.SeverityCritical, critical, true
	case v >= warning:
		return models.SeverityWarning, warning, true
	}
	return "", 0, false
}

func prefix(sev models.Severity) string {
	if sev == models.SeverityCritical {
		return "Critical"
	}
	return "Warning"
}
