package geo

import "github.com/golang/geo/s2"

// DefaultCellLevel is the S2 cell level used when callers do not ask for a
// specific resolution. Level 10 cells are roughly 7-10 km across.
const DefaultCellLevel = 10

// CellToken returns the stable S2 cell token covering the given lat/lng at
// the given level. Tokens are useful as spatial bucket keys: nearby points
// share a token, and a token can be decoded back into a cell later.
func CellToken(lat, lng float64, level int) string {
	ll := s2.LatLngFromDegrees(lat, lng)
	return s2.CellIDFromLatLng(ll).Parent(level).ToToken()
}
