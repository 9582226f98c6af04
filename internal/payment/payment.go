// Package payment запрашивает авторизацию платежа у внешнего провайдера.
package payment

import (
	"context"
	"errors"
)

// ErrPayment провайдер отклонил платёж (или он не может быть отправлен).
var ErrPayment = errors.New("payment rejected")

// Provider внешняя возможность авторизации платежа.
type Provider interface {
	// CreateIntent возвращает client secret для суммы в минимальных единицах валюты.
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}

// ToMinorUnits переводит сумму в центы (×100) с отбрасыванием дробной части.
func ToMinorUnits(amount float64) int64 {
	return int64(amount * 100)
}
