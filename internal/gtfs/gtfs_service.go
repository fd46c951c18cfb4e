package gtfs

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"geofence.urbanatlas.org/internal/geo"
	"geofence.urbanatlas.org/internal/models"
)

// GtfsService resolves region boundaries from GTFS static feeds and keeps
// them current.
type GtfsService struct {
	StaticStore   *StaticStore
	BoundaryStore *geo.BoundaryStore
	Logger        *slog.Logger
	Client        *http.Client
}

func NewGtfsService(staticStore *StaticStore, boundaryStore *geo.BoundaryStore, logger *slog.Logger, client *http.Client) *GtfsService {
	return &GtfsService{
		StaticStore:   staticStore,
		BoundaryStore: boundaryStore,
		Logger:        logger,
		Client:        client,
	}
}

// ResolveBoundaries downloads the static feed for every GTFS-backed region
// and publishes the resulting boundaries. Regions with corner-configured
// boundaries are untouched.
func (gs *GtfsService) ResolveBoundaries(ctx context.Context, regions []models.Region, maxRetries int) {
	resolveBoundaries(ctx, regions, gs.Logger, gs.BoundaryStore, gs.StaticStore, maxRetries)
}

// RefreshBoundaries re-resolves GTFS-derived boundaries on the given
// interval until the context is canceled.
func (gs *GtfsService) RefreshBoundaries(ctx context.Context, regions []models.Region, interval time.Duration, maxRetries int) {
	refreshBoundaries(ctx, regions, gs.Logger, interval, gs.BoundaryStore, gs.StaticStore, maxRetries)
}
