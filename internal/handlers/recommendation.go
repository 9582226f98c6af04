package handlers

import (
	"Alternify/internal/config"
	"Alternify/internal/model"
	"Alternify/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RecommendationHandler маршруты рекомендаций.
type RecommendationHandler struct {
	Recommendations *service.RecommendationService
	Logger          *zap.SugaredLogger
	Config          *config.Config
}

func NewRecommendationHandler(recs *service.RecommendationService, logger *zap.SugaredLogger, cfg *config.Config) *RecommendationHandler {
	return &RecommendationHandler{Recommendations: recs, Logger: logger, Config: cfg}
}

// deleteRecommendationRequest тело DELETE: id родительского запроса.
type deleteRecommendationRequest struct {
	QueryID string `json:"queryId"`
}

// Create POST /add-recommendation
func (h *RecommendationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rec model.Recommendation
	if err := decodeJSON(r, &rec); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	id, err := h.Recommendations.Create(r.Context(), rec)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Acknowledged: true, InsertedID: id})
}

// ListByQuery GET /recommended-queries/{id}
func (h *RecommendationHandler) ListByQuery(w http.ResponseWriter, r *http.Request) {
	items, err := h.Recommendations.ListByQuery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Errorw("ListByQuery: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Delete DELETE /delete-recommendation/{id}, body {"queryId": "..."}.
// Без тела рекомендация удаляется, счётчик не меняется.
func (h *RecommendationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRecommendationRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Warnw("Delete: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	n, err := h.Recommendations.Delete(r.Context(), chi.URLParam(r, "id"), req.QueryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Acknowledged: true, Deleted: n})
}

// ListForMe GET /recommendation-for-me?email: фильтр по user_email.
func (h *RecommendationHandler) ListForMe(w http.ResponseWriter, r *http.Request) {
	email, err := scopeEmail(r, h.Config.StrictScope)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	items, err := h.Recommendations.ListForOwner(r.Context(), email)
	if err != nil {
		h.Logger.Errorw("ListForMe: service error", "email", email, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListMine GET /my-recommendation?email: фильтр по recommender_email.
func (h *RecommendationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email, err := scopeEmail(r, h.Config.StrictScope)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	items, err := h.Recommendations.ListByRecommender(r.Context(), email)
	if err != nil {
		h.Logger.Errorw("ListMine: service error", "email", email, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
