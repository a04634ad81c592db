package api

import (
	"github.com/gorilla/mux"

	"github.com/siderealhq/insight-service/internal/api/recovery"
	"github.com/siderealhq/insight-service/internal/corpus"
	"github.com/siderealhq/insight-service/internal/insight"
	"github.com/siderealhq/insight-service/internal/store"
)

// NewRouter wires all API routes to their handlers.
func NewRouter(st store.Store, ix *corpus.Index, orch *insight.Orchestrator, llmConfigured bool, llmHealthy func() bool, translationEnabled bool) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	insightHandler := NewInsightHandler(orch, st)
	userHandler := NewUserHandler(st)
	cacheHandler := NewCacheHandler(st)
	healthHandler := NewHealthHandler(ix.Ready, llmConfigured, llmHealthy, translationEnabled)

	router.HandleFunc("/api/predict", insightHandler.Predict).Methods("POST")
	router.HandleFunc("/api/users/{userId}", userHandler.GetUser).Methods("GET")
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/cache/stats", cacheHandler.Stats).Methods("GET")
	router.HandleFunc("/api/cache", cacheHandler.Clear).Methods("DELETE")

	return router
}
