package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ukydev/printer-maintenance/internal/analysis"
	"github.com/ukydev/printer-maintenance/internal/auth"
	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/handlers"
	"github.com/ukydev/printer-maintenance/internal/stock"
)

// Wires the full route table against an in-memory store, the way main does
// against Mongo, and smoke-tests the unauthenticated surface.
func TestServerWiring(t *testing.T) {
	store := db.NewStore(db.NewMemoryBlobStore())
	authService, err := auth.NewService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to create auth service: %v", err)
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Store:       store,
		Engine:      stock.NewEngine(),
		Gateway:     analysis.NewGateway(nil, store),
		AuthService: authService,
		Users:       &db.MongoUserCollection{},
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid health body: %v", err)
		}
		if body["status"] != "ok" {
			t.Errorf("expected status ok, got %q", body["status"])
		}
	})

	t.Run("api requires token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/incidents", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
