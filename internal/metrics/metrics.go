package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegionsConfigured is the number of regions currently configured.
	RegionsConfigured = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geofence_regions_configured",
		Help: "Number of regions currently configured in the service",
	})

	// RegionBoundaryResolved reports whether a region has a usable
	// boundary (1 = resolved, 0 = missing).
	RegionBoundaryResolved = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "geofence_region_boundary_resolved",
		Help: "Whether the region has a resolved boundary (1 = resolved, 0 = missing)",
	}, []string{"region_id"})
)

var (
	RegionCoveringRadiusKm = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "geofence_region_covering_radius_km",
		Help: "Covering radius of the region boundary in kilometers (half the NE-SW diagonal)",
	}, []string{"region_id"})

	RegionStops = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "geofence_region_stops",
		Help: "Number of stops in the GTFS static feed backing the region boundary",
	}, []string{"region_id"})
)

var (
	ContainmentChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_containment_checks_total",
		Help: "Containment queries answered, by region and result (inside/outside)",
	}, []string{"region_id", "result"})

	GeodesyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geodesy_requests_total",
		Help: "Geodesy API requests served, by endpoint",
	}, []string{"endpoint"})
)
