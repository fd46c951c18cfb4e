package geo

import "math"

// EarthRadiusM is the WGS84 equatorial radius in meters, used as the
// default sphere for destination-point projection.
const EarthRadiusM = 6378137.0

// DestinationPoint projects a point from origin along the given compass
// bearing (degrees, 0 = north, clockwise) for the given distance in
// meters, on a sphere of radius EarthRadiusM.
func DestinationPoint(origin Point, meters, bearingDeg float64) Point {
	return DestinationPointOnSphere(origin, meters, bearingDeg, EarthRadiusM)
}

// DestinationPointOnSphere is DestinationPoint on a sphere of the given
// radius in meters. It applies the spherical forward-azimuth solution
// (see http://www.movable-type.co.uk/scripts/latlong.html#destPoint).
//
// The resulting longitude is normalized with mod(λ+3π, 2π)−π so that it
// always lands in the −180°..+180° range, including when the projection
// crosses the antimeridian.
func DestinationPointOnSphere(origin Point, meters, bearingDeg, radiusM float64) Point {
	delta := meters / radiusM // angular distance in radians
	theta := Deg2Rad(bearingDeg)
	phi1 := Deg2Rad(origin.Lat)
	lambda1 := Deg2Rad(origin.Lng)

	phi2 := math.Asin(math.Sin(phi1)*math.Cos(delta) +
		math.Cos(phi1)*math.Sin(delta)*math.Cos(theta))
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*math.Sin(phi2))
	lambda2 = math.Mod(lambda2+3*math.Pi, 2*math.Pi) - math.Pi

	return Point{Lat: Rad2Deg(phi2), Lng: Rad2Deg(lambda2)}
}

// NESWBoundsFromRadiusAndCenter returns the boundary whose northeast and
// southwest corners lie radiusM meters from center along the 45° and 225°
// bearings.
func NESWBoundsFromRadiusAndCenter(center Point, radiusM float64) Boundary {
	return Boundary{
		NE: DestinationPoint(center, radiusM, 45),
		SW: DestinationPoint(center, radiusM, 225),
	}
}

// NWSEBoundsFromRadiusAndCenter returns the corner pair whose northwest
// and southeast corners lie radiusM meters from center along the 315° and
// 135° bearings.
func NWSEBoundsFromRadiusAndCenter(center Point, radiusM float64) NWSEBounds {
	return NWSEBounds{
		NW: DestinationPoint(center, radiusM, 315),
		SE: DestinationPoint(center, radiusM, 135),
	}
}
