package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/siderealhq/insight-service/internal/api/respond"
	"github.com/siderealhq/insight-service/internal/api/validate"
	"github.com/siderealhq/insight-service/internal/insight"
	"github.com/siderealhq/insight-service/internal/model"
	"github.com/siderealhq/insight-service/internal/store"
	"github.com/siderealhq/insight-service/internal/zodiac"
)

// InsightHandler handles POST /api/predict.
type InsightHandler struct {
	orch *insight.Orchestrator
	st   store.Store
}

func NewInsightHandler(orch *insight.Orchestrator, st store.Store) *InsightHandler {
	return &InsightHandler{orch: orch, st: st}
}

type predictRequest struct {
	Name       string   `json:"name"`
	BirthDate  string   `json:"birthDate"`
	BirthTime  string   `json:"birthTime"`
	BirthPlace string   `json:"birthPlace"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	UserID     string   `json:"userId,omitempty"`
}

type predictResponse struct {
	Zodiac    model.ZodiacSign `json:"zodiac"`
	Insight   string           `json:"insight"`
	Language  string           `json:"language"`
	CacheHit  bool             `json:"cacheHit"`
	UserScore *float64         `json:"userScore,omitempty"`
	UserID    string           `json:"userId"`
}

func (h *InsightHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var in predictRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}

	birthDate, err := validate.Predict(in.Name, in.BirthDate)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	language := r.URL.Query().Get("language")
	if language == "" {
		language = "en"
	}
	if err := validate.Language(language); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	userID := in.UserID
	if userID == "" {
		userID = uuid.NewString()
	}

	sign := zodiac.Resolve(birthDate)
	details := &model.BirthDetails{
		Name:       in.Name,
		BirthDate:  in.BirthDate,
		BirthTime:  in.BirthTime,
		BirthPlace: in.BirthPlace,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}

	text, cacheHit, err := h.orch.GenerateInsight(r.Context(), insight.Request{
		Name:     in.Name,
		Zodiac:   sign,
		Language: language,
		UserID:   userID,
		Details:  details,
	})
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("insight generation failed")
		respond.WriteInternalError(w, "failed to generate insight")
		return
	}

	var score *float64
	if p, err := h.st.Profiles().Get(r.Context(), userID); err == nil {
		score = &p.Score
	}

	respond.WriteJSON(w, http.StatusOK, predictResponse{
		Zodiac:    sign,
		Insight:   text,
		Language:  language,
		CacheHit:  cacheHit,
		UserScore: score,
		UserID:    userID,
	})
}
