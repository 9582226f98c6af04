package handlers

import (
	"Alternify/internal/config"
	"Alternify/internal/model"
	"Alternify/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QueryHandler маршруты запросов (queries).
type QueryHandler struct {
	Queries *service.QueryService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewQueryHandler(queries *service.QueryService, logger *zap.SugaredLogger, cfg *config.Config) *QueryHandler {
	return &QueryHandler{Queries: queries, Logger: logger, Config: cfg}
}

type countResponse struct {
	Count int64 `json:"count"`
}

// Create POST /add-queries. Поля не валидируются, хранятся как пришли.
func (h *QueryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var q model.Query
	if err := decodeJSON(r, &q); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	id, err := h.Queries.Create(r.Context(), q)
	if err != nil {
		h.Logger.Errorw("Create: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Acknowledged: true, InsertedID: id})
}

// Get GET /product-details/{id}
func (h *QueryHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.Queries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// ListAll GET /all-queries и /recent-queries
func (h *QueryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.Queries.ListAll(r.Context())
	if err != nil {
		h.Logger.Errorw("ListAll: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Search GET /queries?page&size&search
func (h *QueryHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	// нечисловые page/size считаем отсутствующими
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	res, err := h.Queries.Search(r.Context(), q.Get("search"), page, size)
	if err != nil {
		h.Logger.Errorw("Search: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.FormatInt(res.Total, 10))
	writeJSON(w, http.StatusOK, res.Items)
}

// Count GET /queries-count?search
func (h *QueryHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.Queries.Count(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.Logger.Errorw("Count: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// ListMine GET /my-queries?email
func (h *QueryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email, err := scopeEmail(r, h.Config.StrictScope)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	items, err := h.Queries.ListByOwner(r.Context(), email)
	if err != nil {
		h.Logger.Errorw("ListMine: service error", "email", email, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Update PUT /update-queries/{id}: upsert редактируемых полей.
func (h *QueryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var f model.QueryFields
	if err := decodeJSON(r, &f); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	id := chi.URLParam(r, "id")
	n, err := h.Queries.Update(r.Context(), id, f)
	if err != nil {
		h.Logger.Errorw("Update: service error", "id", id, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updateResponse{Acknowledged: true, Matched: n, Modified: n})
}

// Delete DELETE /delete-queries/{id}
func (h *QueryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := h.Queries.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Acknowledged: true, Deleted: n})
}
