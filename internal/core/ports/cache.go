package ports

import (
	"time"

	"github.com/genc-murat/routeperf/internal/core/models"
)

type ReportCache interface {
	Get(env string) (*models.Report, bool)
	Set(env string, report *models.Report, ttl time.Duration)
	Invalidate(env string)
	InvalidateAll()
}
