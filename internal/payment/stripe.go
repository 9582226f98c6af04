package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider создаёт PaymentIntent в Stripe.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider клиент Stripe с отдельным ключом (без глобального stripe.Key).
// Пустой ключ допустим: каждый вызов тогда завершается ErrPayment.
func NewStripeProvider(secretKey string) *StripeProvider {
	if secretKey == "" {
		return &StripeProvider{}
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	if p.api == nil {
		return "", fmt.Errorf("%w: provider is not configured", ErrPayment)
	}
	if amountMinor <= 0 {
		return "", fmt.Errorf("%w: amount must be positive, got %d", ErrPayment, amountMinor)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return "", fmt.Errorf("%w: %s", ErrPayment, stripeErr.Msg)
		}
		return "", fmt.Errorf("%w: %v", ErrPayment, err)
	}
	return pi.ClientSecret, nil
}
