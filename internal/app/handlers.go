package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// HealthStatus is the JSON body returned by /v1/healthcheck. The service
// is considered ready once at least one region is configured.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Regions     int    `json:"regions"`
	Ready       bool   `json:"ready"`
}

// healthcheckHandler responds with a JSON representation of the
// application's health status. If no regions are configured the handler
// responds with HTTP 500 so load balancers keep traffic away until the
// configuration loads.
func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	numRegions := len(app.ConfigService.Config.GetRegions())

	ready := numRegions > 0

	status := HealthStatus{
		Status:      "available",
		Environment: app.ConfigService.Config.Env,
		Version:     app.Version,
		Regions:     numRegions,
		Ready:       ready,
	}

	w.Header().Set("Content-Type", "application/json")
	if !ready {
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(status)
}

// writeJSON writes v as the JSON response body with the given status.
func (app *Application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.Logger.Error("Failed to encode response", "error", err)
	}
}

// errorResponse writes a JSON error body with the given status.
func (app *Application) errorResponse(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, map[string]string{"error": message})
}

// floatParam parses a required float query parameter. Only missing or
// non-numeric input is rejected; the geo functions accept any finite
// value.
func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be a number", name)
	}
	return v, nil
}
