package gtfs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	remoteGtfs "github.com/jamespfennell/gtfs"

	"geofence.urbanatlas.org/internal/config"
	"geofence.urbanatlas.org/internal/geo"
	"geofence.urbanatlas.org/internal/models"
	"geofence.urbanatlas.org/internal/report"
	"geofence.urbanatlas.org/internal/utils"
)

// resolveBoundaries fetches GTFS static bundles for every region that
// derives its boundary from a feed, in parallel, and stores the results.
//
// For each such region it:
//  1. Downloads and parses the static bundle from the region's GTFS URL.
//  2. Keeps the stop data in the StaticStore.
//  3. Computes the bounding rectangle of the stop locations.
//  4. Publishes the rectangle in the BoundaryStore, replacing whatever
//     boundary the region had before.
//
// Failures are handled and reported per region; one region's broken feed
// does not stop the others from resolving.
func resolveBoundaries(ctx context.Context, regions []models.Region, logger *slog.Logger, boundaryStore *geo.BoundaryStore, staticStore *StaticStore, maxRetries int) {
	var wg sync.WaitGroup
	for _, region := range regions {
		if !region.BoundaryFromGtfs() {
			continue
		}
		r := region
		wg.Add(1)
		go func() {
			defer wg.Done()

			bundle, err := downloadStaticFeed(ctx, r.GtfsURL, maxRetries)
			if err != nil {
				report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
					Tags: utils.MakeMap("region_id", strconv.Itoa(r.ID)),
					ExtraContext: map[string]interface{}{
						"gtfs_url": r.GtfsURL,
					},
					Level: sentry.LevelError,
				})
				logger.Error("Failed to download GTFS bundle", "region_id", r.ID, "error", err)
				return
			}
			logger.Info("Successfully downloaded GTFS bundle", "region_id", r.ID)

			err = storeFeedBoundary(bundle, r.ID, staticStore, boundaryStore)
			if err != nil {
				report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
					Tags: utils.MakeMap("region_id", strconv.Itoa(r.ID)),
					ExtraContext: map[string]interface{}{
						"gtfs_url": r.GtfsURL,
					},
					Level: sentry.LevelError,
				})
				logger.Error("Failed to store GTFS-derived boundary", "region_id", r.ID, "error", err)
			}
		}()
	}
	wg.Wait()
}

// refreshBoundaries periodically re-resolves GTFS-derived boundaries at
// the given interval, so that a region's geofence follows its feed as
// stops are added or removed.
//
// The function listens for context cancellation to stop the routine
// gracefully.
func refreshBoundaries(ctx context.Context, regions []models.Region, logger *slog.Logger, interval time.Duration, boundaryStore *geo.BoundaryStore, staticStore *StaticStore, maxRetries int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping GTFS boundary refresh routine")
			return
		case <-ticker.C:
			logger.Info("Refreshing GTFS-derived boundaries")
			resolveBoundaries(ctx, regions, logger, boundaryStore, staticStore, maxRetries)
		}
	}
}

// downloadStaticFeed fetches a GTFS static bundle from the given URL and
// parses it. Transient failures are retried with backoff; error context
// (region ID, URL tags) is attached by the caller.
func downloadStaticFeed(ctx context.Context, url string, maxRetries int) (*remoteGtfs.Static, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	resp, err := config.DoWithBackoff(ctx, client, req, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status %d when downloading GTFS bundle from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read GTFS bundle response body from %s: %w", url, err)
	}

	bundle, err := remoteGtfs.ParseStatic(data, remoteGtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse GTFS static data from %s: %w", url, err)
	}

	return bundle, nil
}

// storeFeedBoundary keeps the stop data for the region and publishes the
// bounding rectangle of its stop locations.
func storeFeedBoundary(bundle *remoteGtfs.Static, regionID int, staticStore *StaticStore, boundaryStore *geo.BoundaryStore) error {
	// StaticData keeps only the parts of the bundle we use, so the rest
	// can be collected early.
	staticData := models.NewStaticData(bundle)
	bundle = nil
	staticStore.Set(regionID, staticData)

	boundary, err := geo.BoundaryFromPoints(staticData.StopPoints())
	if err != nil {
		return fmt.Errorf("could not compute boundary for region_id %d: %v", regionID, err)
	}
	boundaryStore.Set(regionID, boundary)
	return nil
}
