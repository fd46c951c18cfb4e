package models

import (
	"geofence.urbanatlas.org/internal/geo"
)

// Region represents a single geofenced region the service answers
// containment queries for. A region's boundary comes from one of two
// places: the NE/SW corner coordinates configured directly, or, when
// GtfsURL is set, the bounding rectangle of the stops in that static
// GTFS feed.
type Region struct {
	Name    string  `json:"name"`
	ID      int     `json:"id"`
	NELat   float64 `json:"ne_lat"`
	NELng   float64 `json:"ne_lng"`
	SWLat   float64 `json:"sw_lat"`
	SWLng   float64 `json:"sw_lng"`
	GtfsURL string  `json:"gtfs_url,omitempty"`
}

// NewRegion creates a new Region instance with a corner-configured
// boundary.
func NewRegion(name string, id int, neLat, neLng, swLat, swLng float64) *Region {
	return &Region{
		Name:  name,
		ID:    id,
		NELat: neLat,
		NELng: neLng,
		SWLat: swLat,
		SWLng: swLng,
	}
}

// Boundary returns the region's configured corner boundary.
func (r Region) Boundary() geo.Boundary {
	return geo.Boundary{
		NE: geo.Point{Lat: r.NELat, Lng: r.NELng},
		SW: geo.Point{Lat: r.SWLat, Lng: r.SWLng},
	}
}

// BoundaryFromGtfs reports whether the region's boundary should be
// derived from a GTFS static feed instead of the configured corners.
func (r Region) BoundaryFromGtfs() bool {
	return r.GtfsURL != ""
}
