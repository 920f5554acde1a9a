// Package web provides the HTTP server and handlers for the NFT metadata API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/nftmeta/internal/config"
	"github.com/JonMunkholm/nftmeta/internal/core"
	"github.com/JonMunkholm/nftmeta/internal/logging"
	"github.com/JonMunkholm/nftmeta/internal/web/middleware"
)

// Server is the HTTP server for the metadata API.
type Server struct {
	cfg       *config.Config
	ids       *core.IdentifierStore
	metadata  *core.MetadataLoader
	staticDir string
	router    *chi.Mux
	server    *http.Server
}

// NewServer creates a Server reading its data files from cfg.Data.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:       cfg,
		ids:       core.NewIdentifierStore(cfg.Data.IDsFile),
		metadata:  core.NewMetadataLoader(cfg.Data.MetadataFile),
		staticDir: cfg.Data.StaticDir,
		router:    chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(middleware.CORS(s.cfg.Security.AllowedOrigins))
	s.router.Use(chimw.GetHead)
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.NotFound(s.handleNotFound)
	s.router.MethodNotAllowed(s.handleNotFound)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/ids", s.handleListIDs)

	s.router.Route("/nft", func(r chi.Router) {
		// Files under the static dir win over the id routes
		r.Use(s.serveStatic)

		r.NotFound(s.handleNotFound)
		r.MethodNotAllowed(s.handleNotFound)

		r.Get("/{id}", s.handleMiniLand)
		r.Get("/medium/{id}", s.handleMediumLand)
	})

	s.router.Get("/collection/powercube/{id}", s.handlePowerCube)
}

// Start begins listening for HTTP requests. It returns nil after Shutdown.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Identifiers exposes the id store so startup can report what was loaded.
func (s *Server) Identifiers() *core.IdentifierStore {
	return s.ids
}

// Metadata exposes the Power Cube loader.
func (s *Server) Metadata() *core.MetadataLoader {
	return s.metadata
}

// securityHeaders adds headers appropriate for a JSON-only API.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as JSON with the given status.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
