package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"resume-studio/pkg/config"
	"resume-studio/pkg/pipeline"
)

// Server exposes the resume pipeline over HTTP: the form surface posts a
// profile plus settings and gets back the artifact trio. Each request runs
// the pipeline synchronously; there is no shared state between requests.
type Server struct {
	pipe    *pipeline.Pipeline
	catalog config.Catalog
	cfg     config.Config
	logger  *slog.Logger
}

// New creates a server around a pipeline, catalog, and defaults.
func New(pipe *pipeline.Pipeline, catalog config.Catalog, cfg config.Config, logger *slog.Logger) (s *Server) {
	s = &Server{
		pipe:    pipe,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
	}
	return s
}

// Router builds the HTTP route table.
func (s *Server) Router() (r chi.Router) {
	r = chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/resumes", s.handleGenerate)

	return r
}

// logRequests logs one line per request with method, path, status, and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
