package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/mdreader/internal/config"
	"github.com/dgallion1/mdreader/internal/metrics"
	"github.com/dgallion1/mdreader/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API and viewer for mdreader.
type Server struct {
	router  chi.Router
	loader  *pipeline.Loader
	store   *pipeline.Store
	metrics *metrics.Recorder
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(loader *pipeline.Loader, store *pipeline.Store, rec *metrics.Recorder, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		loader:  loader,
		store:   store,
		metrics: rec,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/view/", http.StatusFound)
	})
	r.Get("/view/*", s.handleView)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/render", s.handleRender)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Get("/api/documents/{docID}/outline", s.handleGetOutline)
		r.Get("/api/documents/{docID}/html", s.handleGetHTML)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
