package app

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"geofence.urbanatlas.org/internal/config"
	"geofence.urbanatlas.org/internal/geo"
)

func TestHealthcheckHandler(t *testing.T) {
	t.Run("Ready", func(t *testing.T) {
		app := newTestApplication(t)

		rr := httptest.NewRecorder()
		app.healthcheckHandler(rr, httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil))

		if rr.Code != http.StatusOK {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
		}

		var resp HealthStatus
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if resp.Status != "available" {
			t.Errorf("expected status 'available', got %q", resp.Status)
		}
		if resp.Environment != "testing" {
			t.Errorf("expected environment 'testing', got %q", resp.Environment)
		}
		if resp.Version != "test-version" {
			t.Errorf("expected version 'test-version', got %q", resp.Version)
		}
		if resp.Regions != 1 {
			t.Errorf("expected regions 1, got %d", resp.Regions)
		}
		if !resp.Ready {
			t.Error("expected ready true, got false")
		}
	})

	t.Run("NotReadyWithoutRegions", func(t *testing.T) {
		app := newTestApplication(t)
		app.ConfigService.Config = config.NewConfig(4000, "testing", nil)

		rr := httptest.NewRecorder()
		app.healthcheckHandler(rr, httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil))

		if rr.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d without regions, got %d", http.StatusInternalServerError, rr.Code)
		}
	})
}

func TestDistanceHandler(t *testing.T) {
	app := newTestApplication(t)

	t.Run("OneDegreeOfLongitude", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/distance?from_lat=0&from_lng=0&to_lat=0&to_lng=1", nil)
		app.distanceHandler(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}

		var resp struct {
			Kilometers float64 `json:"kilometers"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if math.Abs(resp.Kilometers-111.19) > 0.01 {
			t.Errorf("kilometers = %v, want ≈ 111.19", resp.Kilometers)
		}
	})

	t.Run("MissingParameter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/distance?from_lat=0&from_lng=0&to_lat=0", nil)
		app.distanceHandler(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("NonNumericParameter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/distance?from_lat=abc&from_lng=0&to_lat=0&to_lng=1", nil)
		app.distanceHandler(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})
}

func TestDestinationHandler(t *testing.T) {
	app := newTestApplication(t)

	t.Run("WrapsAcrossAntimeridian", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/destination?lat=0&lng=179.5&bearing=90&distance_m=100000", nil)
		app.destinationHandler(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}

		var resp struct {
			Destination geo.Point `json:"destination"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Destination.Lng > 0 {
			t.Errorf("longitude = %v, expected a wrapped negative value", resp.Destination.Lng)
		}
	})

	t.Run("MissingBearing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/destination?lat=0&lng=0&distance_m=1000", nil)
		app.destinationHandler(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})
}

func TestBoundsHandler(t *testing.T) {
	app := newTestApplication(t)

	t.Run("DefaultDiagonal", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bounds?lat=47.6&lng=-122.3&radius_m=10000", nil)
		app.boundsHandler(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}

		var resp struct {
			Bounds geo.Boundary `json:"bounds"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Bounds.NE.Lat <= 47.6 || resp.Bounds.SW.Lat >= 47.6 {
			t.Errorf("corners %+v do not straddle the center latitude", resp.Bounds)
		}
	})

	t.Run("NWSEDiagonal", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bounds?lat=47.6&lng=-122.3&radius_m=10000&diagonal=nwse", nil)
		app.boundsHandler(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}

		var resp struct {
			Bounds geo.NWSEBounds `json:"bounds"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Bounds.NW.Lng >= -122.3 || resp.Bounds.SE.Lng <= -122.3 {
			t.Errorf("corners %+v do not straddle the center longitude", resp.Bounds)
		}
	})

	t.Run("InvalidDiagonal", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/bounds?lat=0&lng=0&radius_m=1000&diagonal=sideways", nil)
		app.boundsHandler(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})
}

func TestClusterHandler(t *testing.T) {
	app := newTestApplication(t)

	t.Run("DefaultLevel", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/cluster?lat=47.6&lng=-122.3", nil)
		app.clusterHandler(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}

		var resp struct {
			Level int    `json:"level"`
			Token string `json:"token"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Level != geo.DefaultCellLevel {
			t.Errorf("level = %d, want %d", resp.Level, geo.DefaultCellLevel)
		}
		if resp.Token == "" {
			t.Error("expected a non-empty token")
		}
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/cluster?lat=47.6&lng=-122.3&level=99", nil)
		app.clusterHandler(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})
}
