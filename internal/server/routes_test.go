package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"starforge-server/internal/shared/config"
	"starforge-server/internal/universe"
)

func testMux() *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := universe.NewService("routes-test", nil, time.Minute, logger)
	terrainCfg := config.TerrainConfig{WorkerCount: 2, TilesPerTick: 4}
	return NewRoutes(svc, nil, terrainCfg, logger).Setup()
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, testMux(), "/api/server/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("status field = %v, want healthy", body["status"])
	}
	if body["cache"] != "disabled" {
		t.Fatalf("cache field = %v, want disabled", body["cache"])
	}
}

func TestSectorEndpoint(t *testing.T) {
	mux := testMux()

	rec := get(t, mux, "/api/sectors/0/0/0")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var sector struct {
		Stars []json.RawMessage `json:"stars"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sector); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(sector.Stars) == 0 {
		t.Fatal("sector has no stars")
	}

	// Non-numeric coordinate is a client error.
	if rec := get(t, mux, "/api/sectors/a/0/0"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad coordinate status = %d, want 400", rec.Code)
	}
}

func TestStarEndpointNotFound(t *testing.T) {
	rec := get(t, testMux(), "/api/sectors/0/0/0/stars/999999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := testMux()
	req := httptest.NewRequest(http.MethodPost, "/api/sectors/0/0/0", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestLODTableEndpoint(t *testing.T) {
	rec := get(t, testMux(), "/api/terrain/lods")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var levels []struct {
		LOD        int `json:"lod"`
		Resolution int `json:"resolution"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &levels); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(levels) != 4 {
		t.Fatalf("lod tiers = %d, want 4", len(levels))
	}
	if levels[0].Resolution != 65 {
		t.Fatalf("tier 0 resolution = %d, want 65", levels[0].Resolution)
	}
}

func TestSampleEndpointValidation(t *testing.T) {
	mux := testMux()

	// Missing query parameters fail before any generation happens.
	rec := get(t, mux, "/api/sectors/0/0/0/stars/0/planets/0/sample")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
