package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRoutes(t *testing.T) {
	app := newTestApplication(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := httptest.NewServer(app.Routes(ctx))
	defer server.Close()

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"Healthcheck", "/v1/healthcheck", http.StatusOK},
		{"Distance", "/v1/distance?from_lat=0&from_lng=0&to_lat=0&to_lng=1", http.StatusOK},
		{"Destination", "/v1/destination?lat=0&lng=0&bearing=0&distance_m=1000", http.StatusOK},
		{"Bounds", "/v1/bounds?lat=0&lng=0&radius_m=1000", http.StatusOK},
		{"Cluster", "/v1/cluster?lat=0&lng=0", http.StatusOK},
		{"Regions", "/v1/regions", http.StatusOK},
		{"Contains", "/v1/regions/1/contains?lat=5&lng=5", http.StatusOK},
		{"Metrics", "/metrics", http.StatusOK},
		{"UnknownRoute", "/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + tt.path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.wantStatus)
			}

			if strings.HasPrefix(tt.path, "/v1/") && resp.Header.Get("X-Content-Type-Options") != "nosniff" {
				t.Error("expected the security headers middleware to be applied")
			}
		})
	}
}
