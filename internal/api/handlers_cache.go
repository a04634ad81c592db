package api

import (
	"net/http"

	"github.com/siderealhq/insight-service/internal/api/respond"
	"github.com/siderealhq/insight-service/internal/store"
)

// CacheHandler exposes cache statistics and bulk clearing.
type CacheHandler struct {
	st store.Store
}

func NewCacheHandler(st store.Store) *CacheHandler { return &CacheHandler{st: st} }

func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.st.Stats(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}

func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.st.Clear(r.Context()); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "Cache cleared successfully"})
}
