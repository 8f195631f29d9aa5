package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ukydev/printer-maintenance/internal/analysis"
	"github.com/ukydev/printer-maintenance/internal/auth"
	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/middleware"
	"github.com/ukydev/printer-maintenance/internal/stock"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Store       *db.Store
	Engine      *stock.Engine
	Gateway     *analysis.Gateway
	AuthService *auth.Service
	Users       db.UserCollection
}

// NewRouter builds the full route table. Every /api route except the auth
// endpoints requires a valid token plus the permission matching the action.
func NewRouter(deps RouterDeps) *mux.Router {
	incidents := NewIncidentHandler(deps.Store)
	reference := NewReferenceHandler(deps.Store)
	statsHandler := NewStatsHandler(deps.Store)
	stockHandler := NewStockHandler(deps.Store, deps.Engine)
	analysisHandler := NewAnalysisHandler(deps.Store, deps.Gateway)
	dataHandler := NewDataHandler(deps.Store)
	authHandler := NewAuthHandler(deps.AuthService, deps.Users)

	authMw := middleware.NewAuthMiddleware(deps.AuthService)
	rateMw := middleware.NewRateLimitMiddleware()

	r := mux.NewRouter()
	r.Use(authMw.Authenticate)

	r.HandleFunc("/health", Health).Methods(http.MethodGet)

	// Auth. Login and register sit behind the rate limiter only.
	limited := rateMw.RateLimit(10, 60)
	r.Handle("/api/auth/login", limited(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost)
	r.Handle("/api/auth/register", limited(http.HandlerFunc(authHandler.Register))).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/profile", authHandler.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/profile", authHandler.UpdateProfile).Methods(http.MethodPut)
	r.HandleFunc("/api/auth/password", authHandler.ChangePassword).Methods(http.MethodPost)

	guard := func(action string, h http.HandlerFunc) http.Handler {
		return authMw.RequirePermission(action)(h)
	}

	// Incident log.
	r.Handle("/api/incidents", guard("view_incidents", incidents.List)).Methods(http.MethodGet)
	r.Handle("/api/incidents", guard("create_incident", incidents.Create)).Methods(http.MethodPost)

	// Reference data.
	r.Handle("/api/locations", guard("view_reference", reference.ListLocations)).Methods(http.MethodGet)
	r.Handle("/api/locations", guard("import_data", reference.CreateLocation)).Methods(http.MethodPost)
	r.Handle("/api/machines", guard("view_reference", reference.ListMachines)).Methods(http.MethodGet)
	r.Handle("/api/machines", guard("import_data", reference.CreateMachine)).Methods(http.MethodPost)
	r.Handle("/api/parts", guard("view_reference", reference.ListParts)).Methods(http.MethodGet)
	r.Handle("/api/parts", guard("import_data", reference.CreatePart)).Methods(http.MethodPost)

	// Derived rollups and recommendations.
	r.Handle("/api/stats/locations", guard("view_stats", statsHandler.LocationStats)).Methods(http.MethodGet)
	r.Handle("/api/stats/parts", guard("view_stats", statsHandler.PartStats)).Methods(http.MethodGet)
	r.Handle("/api/stock/recommendations", guard("view_stock", stockHandler.Recommendations)).Methods(http.MethodGet)

	// Analysis.
	r.Handle("/api/analysis", guard("view_stock", analysisHandler.Run)).Methods(http.MethodPost)
	r.Handle("/api/analysis/latest", guard("view_stock", analysisHandler.Latest)).Methods(http.MethodGet)

	// Backup and admin.
	r.Handle("/api/export", guard("import_data", dataHandler.Export)).Methods(http.MethodGet)
	r.Handle("/api/import", guard("import_data", dataHandler.Import)).Methods(http.MethodPost)
	r.Handle("/api/admin/clear", guard("clear_data", dataHandler.Clear)).Methods(http.MethodPost)

	return r
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
