package app

import (
	"context"
	"fmt"
	"time"

	"github.com/genc-murat/routeperf/internal/alert"
	"github.com/genc-murat/routeperf/internal/analysis"
	"github.com/genc-murat/routeperf/internal/config"
	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/core/ports"
	"github.com/genc-murat/routeperf/internal/metrics"
	"github.com/genc-murat/routeperf/internal/rollup"
	"github.com/genc-murat/routeperf/internal/util"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service records sampled requests and serves per-environment reports.
type Service struct {
	cfg      *config.Config
	store    ports.RecordStore
	cache    ports.ReportCache
	analyzer *analysis.Analyzer
	alerts   *alert.Evaluator
	metrics  *metrics.Metrics
	logger   *logrus.Logger
	sample   func(rate float64) bool
	now      func() time.Time
}

// NewService wires a Service. reportCache may be nil to disable caching.
func NewService(cfg *config.Config, store ports.RecordStore, reportCache ports.ReportCache, logger *logrus.Logger) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		cfg:      cfg,
		store:    store,
		cache:    reportCache,
		analyzer: analysis.NewAnalyzer(logger),
		alerts:   alert.NewEvaluator(cfg.Alerts.Enabled, cfg.Alerts.AlertThresholds),
		metrics:  metrics.NewMetrics(),
		logger:   logger,
		sample:   util.ShouldSample,
		now:      time.Now,
	}
}

func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

// Record stores rec unless its route is ignored or it is sampled out. It
// reports whether the record was stored.
func (s *Service) Record(ctx context.Context, rec models.AccessRecord) (bool, error) {
	if err := rec.Validate(); err != nil {
		return false, err
	}
	if err := util.ValidateEnv(rec.Env, s.cfg.Environments); err != nil {
		return false, fmt.Errorf("%w: %v", models.ErrInvalidRecord, err)
	}
	if s.cfg.Ignored(rec.Route) {
		s.metrics.IncrIgnored()
		return false, nil
	}
	if !s.sample(s.cfg.Sampling.Rate) {
		s.metrics.IncrSampledOut()
		return false, nil
	}

	if rec.RequestID == "" {
		rec.RequestID = uuid.NewString()
	}
	if rec.AccessedAt.IsZero() {
		rec.AccessedAt = s.now()
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return false, fmt.Errorf("store record: %w", err)
	}
	s.metrics.IncrRecorded()

	alerts := s.alerts.Evaluate(rec)
	for _, a := range alerts {
		entry := s.logger.WithFields(logrus.Fields{
			"env":       rec.Env,
			"route":     rec.Route,
			"type":      a.Type,
			"value":     a.Value,
			"threshold": a.Threshold,
		})
		if a.Severity == models.SeverityCritical {
			entry.Error(a.Message)
		} else {
			entry.Warn(a.Message)
		}
	}
	s.metrics.AddAlerts(len(alerts))

	if s.cache != nil {
		s.cache.Invalidate(rec.Env)
	}
	return true, nil
}

// Rollup aggregates every stored record of env.
func (s *Service) Rollup(ctx context.Context, env string) ([]models.RouteMetricAggregate, error) {
	var records []models.AccessRecord
	err := s.store.Read(ctx, func(rec models.AccessRecord) error {
		if rec.Env == env {
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return rollup.Build(records), nil
}

// Report returns the cached report for env or builds a fresh one.
func (s *Service) Report(ctx context.Context, env string) (*models.Report, error) {
	if err := util.ValidateEnv(env, s.cfg.Environments); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if report, ok := s.cache.Get(env); ok {
			s.metrics.IncrCacheHit()
			return report, nil
		}
	}

	start := time.Now()
	routes, err := s.Rollup(ctx, env)
	if err != nil {
		return nil, err
	}
	report := s.analyzer.Analyze(env, routes)
	s.metrics.AddAnalysisRun(env, len(routes), time.Since(start))

	if s.cache != nil {
		s.cache.Set(env, report, s.cfg.Cache.TTL)
	}
	return report, nil
}

// Purge drops records older than before, for env or for every environment
// when env is empty.
func (s *Service) Purge(ctx context.Context, before time.Time, env string) (int, error) {
	removed, err := s.store.Purge(ctx, before, env)
	if err != nil {
		return 0, fmt.Errorf("purge records: %w", err)
	}
	if s.cache != nil && removed > 0 {
		if env == "" {
			s.cache.InvalidateAll()
		} else {
			s.cache.Invalidate(env)
		}
	}
	return removed, nil
}
