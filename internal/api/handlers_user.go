package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/siderealhq/insight-service/internal/api/respond"
	"github.com/siderealhq/insight-service/internal/model"
	"github.com/siderealhq/insight-service/internal/store"
)

// UserHandler handles GET /api/users/{userId}.
type UserHandler struct {
	st store.Store
}

func NewUserHandler(st store.Store) *UserHandler { return &UserHandler{st: st} }

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		respond.WriteBadRequest(w, "userId required")
		return
	}

	p, err := h.st.Profiles().Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "User profile not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}
