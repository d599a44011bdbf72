package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "appdesigner/internal/common/errors"
	"appdesigner/internal/models"
)

type generateRequest struct {
	Prompt      string             `json:"prompt"`
	Preferences models.Preferences `json:"preferences"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid JSON body",
		})
		return
	}
	if body.Prompt == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "Prompt is required",
		})
		return
	}

	start := time.Now()
	req := s.extractor.Extract(r.Context(), body.Prompt, body.Preferences)

	doc, err := s.synthesizer.Synthesize(req)
	if err != nil {
		if s.obs != nil {
			s.obs.RecordDesignSynthesized(r.Context(), req.AppType, "error")
		}
		s.logger.Error("design generation failed", map[string]interface{}{
			"app_type": req.AppType,
			"error":    err.Error(),
		})
		s.writeJSON(w, http.StatusInternalServerError, s.errorBody("Failed to generate design", err.Error()))
		return
	}

	saved := s.store.SaveDesign(doc)
	if s.obs != nil {
		s.obs.RecordDesignSynthesized(r.Context(), req.AppType, "success")
		s.obs.RecordSynthesisDuration(r.Context(), time.Since(start), req.AppType)
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"designId":         saved.ID,
		"requirements":     saved.Requirements,
		"structure":        saved,
		"estimatedScreens": len(saved.Screens),
	})
}

func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"designs": s.store.ListDesigns(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   s.store.GetStats(),
	})
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.GetDesign(r.PathValue("id"))
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error": "Design not found",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"design":  doc,
	})
}

type exportCreateRequest struct {
	DesignID   string `json:"designId"`
	FigmaToken string `json:"figmaToken"`
}

func (s *Server) handleExportCreate(w http.ResponseWriter, r *http.Request) {
	var body exportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.DesignID == "" || body.FigmaToken == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "Design ID and Figma token are required",
		})
		return
	}

	result, err := s.exporter.CreateDesignFile(r.Context(), body.DesignID, body.FigmaToken)
	if err != nil {
		var stdErr *apperrors.StandardError
		if errors.As(err, &stdErr) && stdErr.Code == apperrors.ErrCodeDesignNotFound {
			s.writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": "Design not found",
			})
			return
		}
		s.writeJSON(w, http.StatusInternalServerError, s.errorBody("Failed to create Figma file", err.Error()))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"figmaFileId": result.FileKey,
		"figmaUrl":    result.URL,
		"message":     "Figma file created successfully",
	})
}

type exportUpdateRequest struct {
	Updates    map[string]interface{} `json:"updates"`
	FigmaToken string                 `json:"figmaToken"`
}

func (s *Server) handleExportUpdate(w http.ResponseWriter, r *http.Request) {
	var body exportUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid JSON body",
		})
		return
	}

	result, err := s.exporter.UpdateFile(r.Context(), r.PathValue("fileId"), body.Updates, body.FigmaToken)
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, s.errorBody("Failed to update Figma file", err.Error()))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  result,
		"message": "Figma file updated successfully",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAPIInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    s.cfg.App.Name,
		"version": s.cfg.App.Version,
		"status":  "running",
		"endpoints": map[string]string{
			"POST /design/generate":       "Generate design from prompt",
			"GET /design/{id}":            "Get design by ID",
			"GET /design":                 "List all designs",
			"GET /design/stats":           "Get statistics",
			"POST /export/create":         "Export to Figma",
			"PUT /export/update/{fileId}": "Update exported file",
			"GET /health":                 "Health check",
			"GET /metrics":                "Prometheus metrics",
			"GET /":                       "API information",
		},
		"features": map[string]bool{
			"aiGeneration":       s.cfg.Providers.Groq.APIKey != "",
			"anthropicBackup":    s.cfg.Providers.Anthropic.APIKey != "",
			"fallbackGeneration": true,
			"figmaExport":        true,
			"detailedScreens":    true,
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"error":   "Endpoint not found",
		"message": fmt.Sprintf("%s %s is not a valid endpoint", r.Method, r.URL.Path),
		"availableEndpoints": []string{
			"GET /",
			"GET /health",
			"GET /metrics",
			"POST /design/generate",
			"GET /design",
			"GET /design/stats",
			"GET /design/{id}",
			"POST /export/create",
			"PUT /export/update/{fileId}",
		},
	})
}
