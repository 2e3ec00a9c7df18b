package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rangekit/rangefetch/internal/config"
	"github.com/rangekit/rangefetch/internal/log"
)

// Server exposes the generated provider lists over a read-only HTTP API.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	cfg        *config.Config
}

// NewServer creates a new API server bound to cfg.API.ListenAddr.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
	}

	s.router.Use(Recovery)
	s.router.Use(Logger)
	s.router.Use(CORS)

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.API.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/providers", s.handleProvidersList)
		r.Get("/providers/{provider_name}", s.handleProviderGet)

		r.Route("/lists/{provider_name}", func(r chi.Router) {
			r.Get("/", s.handleListGet)
			r.Get("/chunks", s.handleChunksList)
			r.Get("/chunks/{index}", s.handleChunkGet)
		})
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// Router returns the underlying router. Used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins listening and blocks until the server stops.
func (s *Server) Start() error {
	log.Infof("API server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
