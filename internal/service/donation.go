package service

import (
	"Alternify/internal/model"
	"Alternify/internal/payment"
	"Alternify/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DonationService фасад пожертвований: намерение оплаты и запись пожертвования.
type DonationService struct {
	payments  payment.Provider
	donations repo.DonationRepository
	currency  string
	logger    *zap.SugaredLogger
}

func NewDonationService(p payment.Provider, d repo.DonationRepository, currency string, logger *zap.SugaredLogger) *DonationService {
	return &DonationService{payments: p, donations: d, currency: currency, logger: logger}
}

// CreateChargeIntent переводит сумму в центы и запрашивает client secret у провайдера.
// Повторов и ключей идемпотентности нет.
func (s *DonationService) CreateChargeIntent(ctx context.Context, amount float64) (string, error) {
	minor := payment.ToMinorUnits(amount)
	secret, err := s.payments.CreateIntent(ctx, minor, s.currency)
	if err != nil {
		s.logger.Warnw("charge intent rejected", "amount_minor", minor, "error", err)
		if errors.Is(err, payment.ErrPayment) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", payment.ErrPayment, err)
	}
	return secret, nil
}

// RecordDonation сохраняет запись как есть; связь с намерением оплаты не проверяется.
func (s *DonationService) RecordDonation(ctx context.Context, d model.Donation) (string, error) {
	d.ID = ""
	if d.Date.IsZero() {
		d.Date = time.Now().UTC()
	}
	id, err := s.donations.Create(ctx, &d)
	if err != nil {
		return "", fmt.Errorf("record donation: %w", err)
	}
	return id, nil
}
