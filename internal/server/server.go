// Package server exposes the synthesis pipeline over HTTP: design
// generation and retrieval, stats, export, and the operational endpoints.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"appdesigner/internal/common/config"
	"appdesigner/internal/common/logger"
	"appdesigner/internal/common/observability"
	"appdesigner/internal/export/figma"
	"appdesigner/internal/models"
	"appdesigner/internal/store"
)

// RequirementsExtractor is the prompt-interpretation dependency. It never
// fails; the deterministic tier guarantees a usable value.
type RequirementsExtractor interface {
	Extract(ctx context.Context, prompt string, prefs models.Preferences) *models.Requirements
}

// DesignSynthesizer expands requirements into a full document.
type DesignSynthesizer interface {
	Synthesize(req *models.Requirements) (*models.DesignDocument, error)
}

// Exporter is the one-way bridge to the external design tool.
type Exporter interface {
	CreateDesignFile(ctx context.Context, designID, token string) (*figma.ExportResult, error)
	UpdateFile(ctx context.Context, fileKey string, updates map[string]interface{}, token string) (*figma.UpdateResult, error)
}

type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	store       *store.Store
	extractor   RequirementsExtractor
	synthesizer DesignSynthesizer
	exporter    Exporter
	limiter     Limiter
	obs         *observability.Observability
}

func New(
	cfg *config.Config,
	log logger.Logger,
	st *store.Store,
	extractor RequirementsExtractor,
	synth DesignSynthesizer,
	exporter Exporter,
	limiter Limiter,
	obs *observability.Observability,
) *Server {
	return &Server{
		cfg:         cfg,
		logger:      log,
		store:       st,
		extractor:   extractor,
		synthesizer: synth,
		exporter:    exporter,
		limiter:     limiter,
		obs:         obs,
	}
}

// Handler builds the routing table wrapped in the middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /design/generate", s.handleGenerate)
	mux.HandleFunc("GET /design", s.handleListDesigns)
	mux.HandleFunc("GET /design/stats", s.handleStats)
	mux.HandleFunc("GET /design/{id}", s.handleGetDesign)
	mux.HandleFunc("POST /export/create", s.handleExportCreate)
	mux.HandleFunc("PUT /export/update/{fileId}", s.handleExportUpdate)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /{$}", s.handleAPIInfo)
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = s.rateLimitMiddleware(h)
	h = s.corsMiddleware(h)
	h = s.loggingMiddleware(h)
	return h
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encoding failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// errorBody builds the {error, message} envelope. Detailed messages leak
// internals, so they only appear in development.
func (s *Server) errorBody(errText, detail string) map[string]interface{} {
	message := "Internal server error"
	if s.cfg.App.IsDevelopment() && detail != "" {
		message = detail
	}
	return map[string]interface{}{
		"error":   errText,
		"message": message,
	}
}
