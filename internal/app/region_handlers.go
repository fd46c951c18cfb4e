package app

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"geofence.urbanatlas.org/internal/geo"
	"geofence.urbanatlas.org/internal/metrics"
	"geofence.urbanatlas.org/internal/models"
)

// regionStatus is the JSON shape of one region in the /v1/regions listing.
type regionStatus struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	Source           string        `json:"source"`
	Resolved         bool          `json:"resolved"`
	Boundary         *geo.Boundary `json:"boundary,omitempty"`
	CoveringRadiusKm float64       `json:"covering_radius_km,omitempty"`
}

func (app *Application) regionStatusFor(region models.Region) regionStatus {
	status := regionStatus{
		ID:     region.ID,
		Name:   region.Name,
		Source: "config",
	}
	if region.BoundaryFromGtfs() {
		status.Source = "gtfs"
	}

	if boundary, ok := app.BoundaryStore.Get(region.ID); ok {
		status.Resolved = true
		status.Boundary = &boundary
		status.CoveringRadiusKm = geo.RadiusFromBounds(boundary)
	}
	return status
}

// regionsHandler lists the configured regions with their resolved
// boundaries and covering radii.
//
// GET /v1/regions
func (app *Application) regionsHandler(w http.ResponseWriter, r *http.Request) {
	regions := app.ConfigService.Config.GetRegions()

	statuses := make([]regionStatus, 0, len(regions))
	for _, region := range regions {
		statuses = append(statuses, app.regionStatusFor(region))
	}

	app.writeJSON(w, http.StatusOK, struct {
		Regions []regionStatus `json:"regions"`
	}{Regions: statuses})
}

// regionContainsHandler answers whether a point lies inside a region's
// boundary. Unknown regions and regions whose boundary has not resolved
// yet return 404. Points exactly on a boundary edge are outside.
//
// GET /v1/regions/:id/contains?lat=..&lng=..
func (app *Application) regionContainsHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, "region id must be an integer")
		return
	}

	p, err := pointParams(r, "lat", "lng")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := app.regionByID(id); !ok {
		app.errorResponse(w, http.StatusNotFound, "unknown region")
		return
	}

	inside, resolved := app.BoundaryStore.Contains(id, p.Lat, p.Lng)
	if !resolved {
		app.errorResponse(w, http.StatusNotFound, "region boundary not resolved yet")
		return
	}

	metrics.RecordContainmentCheck(id, inside)

	app.writeJSON(w, http.StatusOK, struct {
		RegionID int       `json:"region_id"`
		Point    geo.Point `json:"point"`
		Contains bool      `json:"contains"`
	}{
		RegionID: id,
		Point:    p,
		Contains: inside,
	})
}
