package geo

import "math"

// earthRadiusKm is the Earth's volumetric mean radius in kilometers,
// the conventional value for spherical great-circle approximations.
//
// Reference: NASA Planetary Fact Sheet – Earth
// https://nssdc.gsfc.nasa.gov/planetary/factsheet/earthfact.html
const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometers, using the haversine formula on a sphere of radius 6371 km.
func HaversineKm(a, b Point) float64 {
	lat1 := Deg2Rad(a.Lat)
	lat2 := Deg2Rad(b.Lat)
	dLat := Deg2Rad(b.Lat - a.Lat)
	dLng := Deg2Rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RadiusFromBounds returns the covering radius in kilometers for a map
// viewport: half the great-circle distance between the boundary's
// northeast and southwest corners.
func RadiusFromBounds(b Boundary) float64 {
	return HaversineKm(b.NE, b.SW) / 2
}
