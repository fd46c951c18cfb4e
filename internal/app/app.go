package app

import (
	"log/slog"
	"net/http"

	"geofence.urbanatlas.org/internal/config"
	"geofence.urbanatlas.org/internal/geo"
	"geofence.urbanatlas.org/internal/gtfs"
	"geofence.urbanatlas.org/internal/metrics"
	"geofence.urbanatlas.org/internal/models"
)

// Application wires all dependencies together: the configuration service,
// the GTFS boundary resolver, the metrics service, the shared boundary
// store the handlers answer containment queries from, the logger, and the
// application version.
type Application struct {
	ConfigService  *config.ConfigService
	GtfsService    *gtfs.GtfsService
	MetricsService *metrics.MetricsService
	BoundaryStore  *geo.BoundaryStore
	Logger         *slog.Logger
	Version        string
}

// New creates and wires all dependencies for the Application.
func New(cfg *config.Config, logger *slog.Logger, client *http.Client, version string) *Application {
	staticStore := gtfs.NewStaticStore()
	boundaryStore := geo.NewBoundaryStore()

	configService := config.NewConfigService(logger, client, cfg)
	gtfsService := gtfs.NewGtfsService(staticStore, boundaryStore, logger, client)
	metricsService := metrics.NewMetricsService(staticStore, boundaryStore, logger)

	return &Application{
		ConfigService:  configService,
		GtfsService:    gtfsService,
		MetricsService: metricsService,
		BoundaryStore:  boundaryStore,
		Logger:         logger,
		Version:        version,
	}
}

// SeedConfiguredBoundaries publishes the corner-configured boundary of
// every region that does not derive its boundary from a GTFS feed. Safe to
// call repeatedly; the config refresh loop relies on that to pick up
// boundary edits.
func (app *Application) SeedConfiguredBoundaries(regions []models.Region) {
	for _, region := range regions {
		if region.BoundaryFromGtfs() {
			continue
		}
		app.BoundaryStore.Set(region.ID, region.Boundary())
	}
}

// regionByID looks a region up in the current configuration.
func (app *Application) regionByID(id int) (models.Region, bool) {
	for _, region := range app.ConfigService.Config.GetRegions() {
		if region.ID == id {
			return region, true
		}
	}
	return models.Region{}, false
}
