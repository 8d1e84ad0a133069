package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"menu-cms/internal/auth"
	"menu-cms/internal/handler"
	"menu-cms/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Mutating routes require a bearer token; reads and login do not.
func New(
	authHandler *handler.AuthHandler,
	menuHandler *handler.MenuHandler,
	settingsHandler *handler.SettingsHandler,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()
	protect := middleware.BearerAuth(tokens, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "ok", "timestamp": %q}`, time.Now().UTC().Format(time.RFC3339))
	})

	mux.HandleFunc("/login", authHandler.Login)

	// Protected menu operations, wrapped once at construction time.
	uploadHandler := protect(http.HandlerFunc(menuHandler.Upload))
	toggleHandler := protect(http.HandlerFunc(menuHandler.Toggle))
	resetHandler := protect(http.HandlerFunc(menuHandler.ResetAll))

	// Menu handler function
	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/menus":
			menuHandler.GetAll(w, r)
		case path == "/menus/upload":
			uploadHandler.ServeHTTP(w, r)
		case path == "/menus/reset-all":
			resetHandler.ServeHTTP(w, r)
		case strings.HasSuffix(path, "/toggle"):
			toggleHandler.ServeHTTP(w, r)
		default:
			// Remaining shape is /menus/{type}/{lang}
			menuHandler.GetOne(w, r)
		}
	}

	// Register menu routes (both with and without trailing slash)
	mux.HandleFunc("/menus", menuRouteHandler)
	mux.HandleFunc("/menus/", menuRouteHandler)

	updateSettingsHandler := protect(http.HandlerFunc(settingsHandler.Update))
	mux.HandleFunc("/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			settingsHandler.Get(w, r)
		case http.MethodPost:
			updateSettingsHandler.ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
