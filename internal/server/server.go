package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stockmeta/internal/batch"
	"stockmeta/internal/imagefile"
	"stockmeta/internal/metadata"
)

// Options configures a Server.
type Options struct {
	// SkipDuplicates rejects uploads perceptually identical to an image
	// already processed in this session.
	SkipDuplicates bool
}

// Server holds the session state and routes for the local HTTP API.
type Server struct {
	router    *chi.Mux
	generator batch.Generator
	logger    *slog.Logger
	opts      Options

	mu      sync.Mutex
	records []metadata.Record
	dedup   *imagefile.DedupFilter
}

// NewServer constructs a Server around the given metadata generator.
func NewServer(generator batch.Generator, logger *slog.Logger, opts Options) (*Server, error) {
	if generator == nil {
		return nil, errors.New("server: generator required")
	}
	if logger == nil {
		return nil, errors.New("server: logger required")
	}
	s := &Server{
		router:    chi.NewRouter(),
		generator: generator,
		logger:    logger,
		opts:      opts,
		dedup:     imagefile.NewDedupFilter(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/process", s.handleProcess)
	s.router.Get("/api/records", s.handleRecords)
	s.router.Delete("/api/records", s.handleClearRecords)
	s.router.Get("/api/export", s.handleExport)
}

// Router returns the HTTP handler, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe runs the server on bind until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, bind string) error {
	srv := &http.Server{
		Addr:              bind,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("http server listening", "bind", bind)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
