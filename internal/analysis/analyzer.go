package analysis

import (
	"time"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Analyzer builds complete reports. It holds no state between calls and is
// safe for concurrent use.
type Analyzer struct {
	logger *logrus.Logger
	now    func() time.Time
}

func NewAnalyzer(logger *logrus.Logger) *Analyzer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Analyzer{
		logger: logger,
		now:    time.Now,
	}
}

func (a *Analyzer) Analyze(env string, routes []models.RouteMetricAggregate) *models.Report {
	start := a.now()

	channelStats := Aggregate(routes)
	report := &models.Report{
		ID:              uuid.NewString(),
		Env:             env,
		GeneratedAt:     start,
		TotalRoutes:     len(routes),
		Summary:         Summarize(routes),
		Stats:           channelStats,
		Correlations:    AnalyzeCorrelations(routes),
		Efficiency:      AnalyzeEfficiency(routes),
		Traffic:         AnalyzeTraffic(routes),
		Attention:       RoutesNeedingAttention(routes, channelStats),
		Recommendations: GenerateRecommendations(routes, channelStats),
	}

	a.logger.WithFields(logrus.Fields{
		"env":             env,
		"routes":          len(routes),
		"recommendations": len(report.Recommendations),
		"duration":        a.now().Sub(start),
	}).Debug("Performance report generated")

	return report
}
