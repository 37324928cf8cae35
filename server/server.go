package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"autoforge/config"
)

// Server exposes the forge pipeline over HTTP and keeps a bounded history
// of results so the prompt and caption can be fetched again for copying.
type Server struct {
	cfg    config.ServerConfig
	store  *resultStore
	logger *slog.Logger
	now    func() time.Time
}

func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	store, err := newResultStore(cfg.Store.MaxEntries)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:    cfg.Server,
		store:  store,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(logMiddleware(s.logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeSuccess(w, http.StatusOK, "ok", nil) })
	r.Route("/api/forges", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/prompt", s.handlePrompt)
		r.Get("/{id}/caption", s.handleCaption)
		r.Get("/{id}/export", s.handleExport)
	})
	return r
}
