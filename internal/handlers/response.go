package handlers

import (
	"Alternify/internal/middleware"
	"Alternify/internal/payment"
	"Alternify/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate общий валидатор DTO; в сообщениях используются json-имена полей.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}()

type ackResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"inserted_id,omitempty"`
}

type updateResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	Matched      int64 `json:"matched"`
	Modified     int64 `json:"modified"`
}

type deleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	Deleted      int64 `json:"deleted"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError маппит ошибки сервисов в HTTP-коды.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, payment.ErrPayment):
		writeError(w, http.StatusPaymentRequired, "payment failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// scopeEmail email для "моих" выборок: параметр ?email либо email из токена.
func scopeEmail(r *http.Request, strict bool) (string, error) {
	identity, _ := middleware.GetEmailFromContext(r.Context())
	return service.ResolveScope(r.URL.Query().Get("email"), identity, strict)
}
