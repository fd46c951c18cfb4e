package metrics

import (
	"strconv"

	"geofence.urbanatlas.org/internal/geo"
	"geofence.urbanatlas.org/internal/models"
)

// StopCounter is the part of the GTFS static store region metrics need.
type StopCounter interface {
	StopCount(regionID int) (int, bool)
}

// TrackRegionBoundaries updates the per-region gauges from the current
// boundary store contents: resolution state, covering radius, and, for
// GTFS-backed regions, the stop count.
func TrackRegionBoundaries(regions []models.Region, boundaryStore *geo.BoundaryStore, stops StopCounter) {
	RegionsConfigured.Set(float64(len(regions)))

	for _, region := range regions {
		id := strconv.Itoa(region.ID)

		boundary, ok := boundaryStore.Get(region.ID)
		if !ok {
			RegionBoundaryResolved.WithLabelValues(id).Set(0)
			continue
		}
		RegionBoundaryResolved.WithLabelValues(id).Set(1)
		RegionCoveringRadiusKm.WithLabelValues(id).Set(geo.RadiusFromBounds(boundary))

		if count, ok := stops.StopCount(region.ID); ok {
			RegionStops.WithLabelValues(id).Set(float64(count))
		}
	}
}

// RecordContainmentCheck counts one containment query result for a region.
func RecordContainmentCheck(regionID int, inside bool) {
	result := "outside"
	if inside {
		result = "inside"
	}
	ContainmentChecks.WithLabelValues(strconv.Itoa(regionID), result).Inc()
}
