package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadhelper/tryouts/internal/api/handler"
	"github.com/squadhelper/tryouts/internal/api/middleware"
	"github.com/squadhelper/tryouts/internal/services/export"
	"github.com/squadhelper/tryouts/internal/services/otp"
	"github.com/squadhelper/tryouts/internal/services/registry"
	"github.com/squadhelper/tryouts/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	SessionManager  *session.Manager
	OTPService      *otp.Service
	RegistryService *registry.Service
	ExportService   *export.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.SessionManager, cfg.OTPService)
	playerHandler := handler.NewPlayerHandler(cfg.RegistryService)
	sportHandler := handler.NewSportHandler(cfg.RegistryService)
	exportHandler := handler.NewExportHandler(cfg.RegistryService, cfg.ExportService)

	authMiddleware := middleware.Auth(cfg.SessionManager)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (register and the login challenge flow need no session)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", authHandler.Verify).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Registration routes (all require a session)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.Add).Methods(http.MethodPost)
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)

	playersAdmin := api.PathPrefix("/players").Subrouter()
	playersAdmin.Use(authMiddleware, middleware.RequireAdmin)
	playersAdmin.HandleFunc("/{id}/attendance", playerHandler.MarkAttendance).Methods(http.MethodPatch)

	// Sport catalogue (reads for any session, mutations admin-only)
	sports := api.PathPrefix("/sports").Subrouter()
	sports.Use(authMiddleware)
	sports.HandleFunc("", sportHandler.List).Methods(http.MethodGet)

	sportsAdmin := api.PathPrefix("/sports").Subrouter()
	sportsAdmin.Use(authMiddleware, middleware.RequireAdmin)
	sportsAdmin.HandleFunc("", sportHandler.Add).Methods(http.MethodPost)
	sportsAdmin.HandleFunc("/{name}", sportHandler.Remove).Methods(http.MethodDelete)

	// Derived views
	summary := api.PathPrefix("/summary").Subrouter()
	summary.Use(authMiddleware)
	summary.HandleFunc("", playerHandler.Summary).Methods(http.MethodGet)

	attendance := api.PathPrefix("/attendance").Subrouter()
	attendance.Use(authMiddleware, middleware.RequireAdmin)
	attendance.HandleFunc("/{sport}", playerHandler.Attendance).Methods(http.MethodGet)

	// PDF exports (admin-only)
	exports := api.PathPrefix("/export").Subrouter()
	exports.Use(authMiddleware, middleware.RequireAdmin)
	exports.HandleFunc("/players/{sport}", exportHandler.Players).Methods(http.MethodGet)
	exports.HandleFunc("/attendance/{sport}", exportHandler.Attendance).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
