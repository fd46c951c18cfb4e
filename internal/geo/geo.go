// Package geo provides the geodesic math used across the geofence service:
// degree/radian conversion, great-circle distance, destination-point
// projection, bounding-rectangle derivation, and point-in-boundary tests.
//
// All functions are pure and stateless; they only read their arguments and
// are safe to call concurrently without synchronization. None of them
// validate coordinate ranges: out-of-range input produces a mathematically
// defined but geographically meaningless result (or NaN), never an error.
package geo

import "math"

// degPerRad is 180/π precomputed so Rad2Deg(Deg2Rad(x)) round-trips
// without recomputing the division on every call.
const degPerRad = 57.29577951308232

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Boundary is a geographic rectangle described by its northeast and
// southwest corners. A boundary whose NE longitude is smaller than its SW
// longitude is taken to cross the antimeridian; see InRectBoundary.
type Boundary struct {
	NE Point `json:"ne"`
	SW Point `json:"sw"`
}

// NWSEBounds is a geographic rectangle described by its northwest and
// southeast corners.
type NWSEBounds struct {
	NW Point `json:"nw"`
	SE Point `json:"se"`
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * degPerRad
}
