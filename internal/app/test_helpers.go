package app

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"geofence.urbanatlas.org/internal/config"
	"geofence.urbanatlas.org/internal/models"
)

// newTestApplication builds an Application with a single corner-configured
// region (a ±10° box around the origin) and its boundary already seeded.
func newTestApplication(t *testing.T) *Application {
	t.Helper()

	region := models.NewRegion("Test Region", 1, 10, 10, -10, -10)

	cfg := config.NewConfig(
		4000,
		"testing",
		[]models.Region{*region},
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := New(cfg, logger, &http.Client{}, "test-version")
	app.SeedConfiguredBoundaries(cfg.GetRegions())
	return app
}
