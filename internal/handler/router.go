package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"book-club-server/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"book-club-server"}`))
	}).Methods("GET")

	// Initialize handlers
	authHandler := NewAuthHandler(container.SessionService, container.Logger)
	preferenceHandler := NewPreferenceHandler(container.PreferenceService, container.Logger)
	reviewHandler := NewReviewHandler(container.ReviewService, container.Logger)
	catalogHandler := NewCatalogHandler(container.Catalog)

	// Session middleware for routes that require a logged-in member
	sessionMiddleware := SessionMiddleware(container.SessionService)

	// Auth routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/session", authHandler.GetSession).Methods("GET")

	// Preference routes (settings do not require login)
	api.HandleFunc("/preferences", preferenceHandler.GetPreferences).Methods("GET")
	api.HandleFunc("/preferences", preferenceHandler.UpdatePreference).Methods("PUT")
	api.HandleFunc("/preferences/theme/toggle", preferenceHandler.ToggleTheme).Methods("POST")
	api.HandleFunc("/preferences/display", preferenceHandler.GetDisplay).Methods("GET")

	// Catalog routes (read-only)
	api.HandleFunc("/catalog/months", catalogHandler.GetMonths).Methods("GET")

	// Review routes; reading is public, writing requires a session
	api.HandleFunc("/reviews/{monthKey}", reviewHandler.ListByMonth).Methods("GET")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(sessionMiddleware)
	protected.HandleFunc("/reviews", reviewHandler.Create).Methods("POST")
	protected.HandleFunc("/reviews/{id}", reviewHandler.Delete).Methods("DELETE")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
