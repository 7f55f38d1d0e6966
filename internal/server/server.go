package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Ensemble-v1/ensemble-v1/internal/analyze"
	"github.com/Ensemble-v1/ensemble-v1/internal/config"
)

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	cfg      config.Config
	analyzer *analyze.Analyzer
	log      *slog.Logger
	router   *mux.Router
}

// New wires the router and middleware. The analyzer must not be nil; log may
// be nil for slog.Default().
func New(cfg config.Config, analyzer *analyze.Analyzer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{cfg: cfg, analyzer: analyzer, log: log}

	r := mux.NewRouter().StrictSlash(true)
	r.HandleFunc("/api/analyze", s.handleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.PathPrefix("/static/uploads/").Handler(
		http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	r.PathPrefix("/static/audio/").Handler(
		http.StripPrefix("/static/audio/", http.FileServer(http.Dir(cfg.AudioDir))))
	r.Use(s.logRequests)
	s.router = r

	return s
}

// Handler returns the full middleware chain, CORS outermost.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(s.router)
}

// Run creates the upload and audio directories and serves until the listener
// fails.
func (s *Server) Run() error {
	for _, dir := range []string{s.cfg.UploadDir, s.cfg.AudioDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// logRequests logs method, path, and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
