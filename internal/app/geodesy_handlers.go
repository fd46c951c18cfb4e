package app

import (
	"net/http"
	"strconv"

	"geofence.urbanatlas.org/internal/geo"
	"geofence.urbanatlas.org/internal/metrics"
)

// distanceHandler returns the great-circle distance in kilometers between
// the from and to points.
//
// GET /v1/distance?from_lat=..&from_lng=..&to_lat=..&to_lng=..
func (app *Application) distanceHandler(w http.ResponseWriter, r *http.Request) {
	from, err := pointParams(r, "from_lat", "from_lng")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := pointParams(r, "to_lat", "to_lng")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.GeodesyRequests.WithLabelValues("distance").Inc()

	app.writeJSON(w, http.StatusOK, struct {
		From       geo.Point `json:"from"`
		To         geo.Point `json:"to"`
		Kilometers float64   `json:"kilometers"`
	}{
		From:       from,
		To:         to,
		Kilometers: geo.HaversineKm(from, to),
	})
}

// destinationHandler projects a destination point from an origin along a
// compass bearing for a distance in meters.
//
// GET /v1/destination?lat=..&lng=..&bearing=..&distance_m=..
func (app *Application) destinationHandler(w http.ResponseWriter, r *http.Request) {
	origin, err := pointParams(r, "lat", "lng")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	bearing, err := floatParam(r, "bearing")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	meters, err := floatParam(r, "distance_m")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.GeodesyRequests.WithLabelValues("destination").Inc()

	app.writeJSON(w, http.StatusOK, struct {
		Origin      geo.Point `json:"origin"`
		Bearing     float64   `json:"bearing"`
		Meters      float64   `json:"distance_m"`
		Destination geo.Point `json:"destination"`
	}{
		Origin:      origin,
		Bearing:     bearing,
		Meters:      meters,
		Destination: geo.DestinationPoint(origin, meters, bearing),
	})
}

// boundsHandler returns the bounding corners at a radius around a center.
// The diagonal parameter picks the corner pair: "nesw" (the default)
// returns northeast/southwest, "nwse" returns northwest/southeast.
//
// GET /v1/bounds?lat=..&lng=..&radius_m=..[&diagonal=nesw|nwse]
func (app *Application) boundsHandler(w http.ResponseWriter, r *http.Request) {
	center, err := pointParams(r, "lat", "lng")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	radius, err := floatParam(r, "radius_m")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var bounds any
	switch diagonal := r.URL.Query().Get("diagonal"); diagonal {
	case "", "nesw":
		bounds = geo.NESWBoundsFromRadiusAndCenter(center, radius)
	case "nwse":
		bounds = geo.NWSEBoundsFromRadiusAndCenter(center, radius)
	default:
		app.errorResponse(w, http.StatusBadRequest, "diagonal must be \"nesw\" or \"nwse\"")
		return
	}

	metrics.GeodesyRequests.WithLabelValues("bounds").Inc()

	app.writeJSON(w, http.StatusOK, struct {
		Center  geo.Point `json:"center"`
		RadiusM float64   `json:"radius_m"`
		Bounds  any       `json:"bounds"`
	}{
		Center:  center,
		RadiusM: radius,
		Bounds:  bounds,
	})
}

// clusterHandler returns the S2 cell token covering a point, for use as a
// spatial bucket key. The level defaults to geo.DefaultCellLevel.
//
// GET /v1/cluster?lat=..&lng=..[&level=..]
func (app *Application) clusterHandler(w http.ResponseWriter, r *http.Request) {
	p, err := pointParams(r, "lat", "lng")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	level := geo.DefaultCellLevel
	if raw := r.URL.Query().Get("level"); raw != "" {
		level, err = strconv.Atoi(raw)
		if err != nil || level < 0 || level > 30 {
			app.errorResponse(w, http.StatusBadRequest, "level must be an integer between 0 and 30")
			return
		}
	}

	metrics.GeodesyRequests.WithLabelValues("cluster").Inc()

	app.writeJSON(w, http.StatusOK, struct {
		Point geo.Point `json:"point"`
		Level int       `json:"level"`
		Token string    `json:"token"`
	}{
		Point: p,
		Level: level,
		Token: geo.CellToken(p.Lat, p.Lng, level),
	})
}

// pointParams parses a lat/lng pair from the query string.
func pointParams(r *http.Request, latName, lngName string) (geo.Point, error) {
	lat, err := floatParam(r, latName)
	if err != nil {
		return geo.Point{}, err
	}
	lng, err := floatParam(r, lngName)
	if err != nil {
		return geo.Point{}, err
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}
