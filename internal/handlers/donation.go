package handlers

import (
	"Alternify/internal/model"
	"Alternify/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// DonationHandler платёжные маршруты.
type DonationHandler struct {
	Donations *service.DonationService
	Logger    *zap.SugaredLogger
}

func NewDonationHandler(donations *service.DonationService, logger *zap.SugaredLogger) *DonationHandler {
	return &DonationHandler{Donations: donations, Logger: logger}
}

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent POST /create-payment-intent
func (h *DonationHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("CreatePaymentIntent: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	secret, err := h.Donations.CreateChargeIntent(r.Context(), req.Price)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}

// Record POST /donations
func (h *DonationHandler) Record(w http.ResponseWriter, r *http.Request) {
	var d model.Donation
	if err := decodeJSON(r, &d); err != nil {
		h.Logger.Warnw("Record: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	id, err := h.Donations.RecordDonation(r.Context(), d)
	if err != nil {
		h.Logger.Errorw("Record: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Acknowledged: true, InsertedID: id})
}
