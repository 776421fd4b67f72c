package ports

import (
	"context"
	"time"

	"github.com/genc-murat/routeperf/internal/core/models"
)

type RecordStore interface {
	Append(ctx context.Context, rec models.AccessRecord) error
	Read(ctx context.Context, fn func(models.AccessRecord) error) error
	Purge(ctx context.Context, before time.Time, env string) (int, error)
	Close() error
}
