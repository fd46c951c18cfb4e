package geo

import (
	"fmt"
	"math"
)

// InRectBoundary reports whether p lies strictly inside b.
//
// Latitude containment is SW.Lat < p.Lat < NE.Lat. For longitude, a
// boundary whose NE longitude is smaller than its SW longitude is taken
// to cross the antimeridian, and containment becomes an OR of the two
// half-planes instead of an AND. All four edges are exclusive: a point
// exactly on an edge is outside.
func InRectBoundary(p Point, b Boundary) bool {
	if p.Lat <= b.SW.Lat || p.Lat >= b.NE.Lat {
		return false
	}
	if b.NE.Lng < b.SW.Lng {
		// box crosses the antimeridian
		return p.Lng < b.NE.Lng || p.Lng > b.SW.Lng
	}
	return p.Lng < b.NE.Lng && p.Lng > b.SW.Lng
}

// BoundaryFromPoints computes the axis-aligned boundary of a point set by
// sweeping for the min/max latitude and longitude. It does not account for
// point sets that straddle the antimeridian; callers with such data should
// configure an explicit boundary instead.
func BoundaryFromPoints(pts []Point) (Boundary, error) {
	if len(pts) == 0 {
		return Boundary{}, fmt.Errorf("no points to compute boundary")
	}

	minLat := math.MaxFloat64
	maxLat := -math.MaxFloat64
	minLng := math.MaxFloat64
	maxLng := -math.MaxFloat64

	for _, p := range pts {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lng < minLng {
			minLng = p.Lng
		}
		if p.Lng > maxLng {
			maxLng = p.Lng
		}
	}

	return Boundary{
		NE: Point{Lat: maxLat, Lng: maxLng},
		SW: Point{Lat: minLat, Lng: minLng},
	}, nil
}

// IsValidLatLon returns true if the given latitude and longitude values
// fall within the valid geographic coordinate bounds.
//
// Latitude must be between -90 and 90 degrees, and longitude must be
// between -180 and 180 degrees.
//
// Note: This function treats the coordinate (0,0) as invalid, even though it
// is a valid location in the Gulf of Guinea. This assumption is made to help
// detect uninitialized or placeholder coordinates commonly represented as (0,0).
func IsValidLatLon(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	return true
}
