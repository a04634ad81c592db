package api

import (
	"net/http"
	"time"

	"github.com/siderealhq/insight-service/internal/api/respond"
)

// HealthHandler reports component status. The service stays healthy even
// with degraded backends: every pipeline step has a fallback.
type HealthHandler struct {
	indexReady         func() bool
	llmConfigured      bool
	llmHealthy         func() bool
	translationEnabled bool
}

// NewHealthHandler builds the handler. llmHealthy may be nil when no
// background checker is running; the configured flag then stands alone.
func NewHealthHandler(indexReady func() bool, llmConfigured bool, llmHealthy func() bool, translationEnabled bool) *HealthHandler {
	return &HealthHandler{
		indexReady:         indexReady,
		llmConfigured:      llmConfigured,
		llmHealthy:         llmHealthy,
		translationEnabled: translationEnabled,
	}
}

// CheckHealth handles GET /api/health.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	vectorStore := "disabled"
	if h.indexReady != nil && h.indexReady() {
		vectorStore = "ready"
	}
	llm := "fallback-only"
	if h.llmConfigured {
		llm = "configured"
		if h.llmHealthy != nil && !h.llmHealthy() {
			llm = "unreachable"
		}
	}
	translation := "disabled"
	if h.translationEnabled && h.llmConfigured {
		translation = "enabled"
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"services": map[string]string{
			"cache":       "in-memory",
			"vectorStore": vectorStore,
			"llm":         llm,
			"translation": translation,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
