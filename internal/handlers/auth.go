package handlers

import (
	"Alternify/internal/auth"
	"Alternify/internal/config"
	"Alternify/internal/middleware"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler выдаёт и сбрасывает cookie сессии.
type AuthHandler struct {
	Tokens *auth.TokenService
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewAuthHandler(tokens *auth.TokenService, logger *zap.SugaredLogger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Tokens: tokens, Logger: logger, Config: cfg}
}

type issueRequest struct {
	Email string `json:"email" validate:"required"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Issue POST /jwt: токен для переданного email. Пароля нет, личность заявляется клиентом,
// форма значения не проверяется.
func (h *AuthHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Issue: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := middleware.SetLoginCookie(w, h.Tokens, req.Email, h.Config.IsProduction()); err != nil {
		h.Logger.Errorw("Issue: sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Logout POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w, h.Config.IsProduction())
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
