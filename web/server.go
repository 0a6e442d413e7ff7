package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"suggestbot/model"
)

// StatsSource provides the aggregate counts shown on the panel.
type StatsSource interface {
	Stats() (model.Stats, error)
}

// SiteInfo is the branding payload the panel fetches once at load.
type SiteInfo struct {
	SiteTitle  string `json:"siteTitle"`
	BrandColor string `json:"brandColor"`
	LogoURL    string `json:"logoUrl"`
}

// Server serves the stats API and the static panel.
type Server struct {
	stats      StatsSource
	info       SiteInfo
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates the web server for the given stats source and static
// asset directory.
func NewServer(addr string, stats StatsSource, info SiteInfo, staticDir string, logger *slog.Logger) *Server {
	s := &Server{
		stats:  stats,
		info:   info,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /site-info", s.handleSiteInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      withLogging(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for HTTP requests. It blocks until the server is
// shut down or an error occurs.
func (s *Server) Start() error {
	s.logger.Info("starting web server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats, err := s.stats.Stats()
	if err != nil {
		s.logger.Error("failed to compute stats", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSiteInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.info)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func withLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		next.ServeHTTP(w, r)
		logger.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
