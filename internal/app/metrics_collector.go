package app

import (
	"context"
	"time"
)

// StartMetricsCollection runs the periodic collection loop: it re-seeds
// corner-configured boundaries (so config refreshes propagate to the
// boundary store) and refreshes the per-region gauges. The loop stops when
// the context is canceled.
func (app *Application) StartMetricsCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				app.Logger.Info("Stopping metrics collection routine")
				return
			case <-ticker.C:
				regions := app.ConfigService.Config.GetRegions()
				app.SeedConfiguredBoundaries(regions)
				app.MetricsService.CollectRegionMetrics(regions)
			}
		}
	}()
}
