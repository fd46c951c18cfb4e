package metrics

import (
	"log/slog"

	"geofence.urbanatlas.org/internal/geo"
	"geofence.urbanatlas.org/internal/gtfs"
	"geofence.urbanatlas.org/internal/models"
)

// MetricsService holds the stores the collection loop reads from.
type MetricsService struct {
	StaticStore   *gtfs.StaticStore
	BoundaryStore *geo.BoundaryStore
	Logger        *slog.Logger
}

func NewMetricsService(staticStore *gtfs.StaticStore, boundaryStore *geo.BoundaryStore, logger *slog.Logger) *MetricsService {
	return &MetricsService{
		StaticStore:   staticStore,
		BoundaryStore: boundaryStore,
		Logger:        logger,
	}
}

// CollectRegionMetrics refreshes the region gauges from the current stores.
func (ms *MetricsService) CollectRegionMetrics(regions []models.Region) {
	TrackRegionBoundaries(regions, ms.BoundaryStore, ms.StaticStore)
}
