package models

import (
	remoteGtfs "github.com/jamespfennell/gtfs"

	"geofence.urbanatlas.org/internal/geo"
)

// StaticData holds the slice of a parsed GTFS static bundle the service
// actually uses: the stops. Keeping only the stops lets the rest of the
// bundle be collected instead of pinning it in memory for every region.
type StaticData struct {
	Stops []remoteGtfs.Stop
}

// NewStaticData extracts the stops from a parsed GTFS static bundle.
func NewStaticData(bundle *remoteGtfs.Static) *StaticData {
	return &StaticData{
		Stops: append([]remoteGtfs.Stop(nil), bundle.Stops...),
	}
}

// StopPoints returns the coordinates of every stop that has both a
// latitude and a longitude. Stops without coordinates (entrances, generic
// nodes) are skipped.
func (d *StaticData) StopPoints() []geo.Point {
	pts := make([]geo.Point, 0, len(d.Stops))
	for _, stop := range d.Stops {
		if stop.Latitude != nil && stop.Longitude != nil {
			pts = append(pts, geo.Point{Lat: float64(*stop.Latitude), Lng: float64(*stop.Longitude)})
		}
	}
	return pts
}
