package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"geofence.urbanatlas.org/internal/middleware"
)

// Routes sets up the HTTP routing configuration for the application and
// returns the final http.Handler.
//
// Registered routes:
//   - GET /v1/healthcheck: health and readiness snapshot.
//   - GET /v1/distance: great-circle distance between two points.
//   - GET /v1/destination: destination point from origin, bearing, distance.
//   - GET /v1/bounds: bounding corners around a center at a radius.
//   - GET /v1/cluster: S2 cell token for a point.
//   - GET /v1/regions: the configured regions and their boundaries.
//   - GET /v1/regions/:id/contains: point-in-boundary test for a region.
//   - GET /metrics: Prometheus exposition, served from a cache refreshed
//     every 10 seconds to keep scrape overhead down.
//
// The router is wrapped with the Sentry middleware for error capture and
// with the security-headers middleware.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/distance", app.distanceHandler)
	router.HandlerFunc(http.MethodGet, "/v1/destination", app.destinationHandler)
	router.HandlerFunc(http.MethodGet, "/v1/bounds", app.boundsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/cluster", app.clusterHandler)
	router.HandlerFunc(http.MethodGet, "/v1/regions", app.regionsHandler)
	router.GET("/v1/regions/:id/contains", app.regionContainsHandler)
	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, 10*time.Second))

	handler := middleware.SentryMiddleware(router)
	return middleware.SecurityHeaders(handler)
}
