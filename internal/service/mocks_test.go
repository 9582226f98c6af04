package service

import (
	"Alternify/internal/model"
	"Alternify/internal/payment"
	"Alternify/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

type mockQueryRepo struct{ mock.Mock }

func (m *mockQueryRepo) Create(ctx context.Context, q *model.Query) (string, error) {
	args := m.Called(ctx, q)
	return args.String(0), args.Error(1)
}
func (m *mockQueryRepo) GetByID(ctx context.Context, id string) (*model.Query, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockQueryRepo) Search(ctx context.Context, term string, skip, limit int) ([]model.Query, error) {
	args := m.Called(ctx, term, skip, limit)
	if v, ok := args.Get(0).([]model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockQueryRepo) Count(ctx context.Context, term string) (int64, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockQueryRepo) ListAll(ctx context.Context) ([]model.Query, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockQueryRepo) ListByOwner(ctx context.Context, email string) ([]model.Query, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockQueryRepo) Upsert(ctx context.Context, id string, f model.QueryFields) (int64, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockQueryRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockQueryRepo) AdjustCount(ctx context.Context, id string, delta int64) error {
	return m.Called(ctx, id, delta).Error(0)
}

var _ repo.QueryRepository = (*mockQueryRepo)(nil)

type mockRecRepo struct{ mock.Mock }

func (m *mockRecRepo) Create(ctx context.Context, r *model.Recommendation) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}
func (m *mockRecRepo) ListByQuery(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	args := m.Called(ctx, queryID)
	if v, ok := args.Get(0).([]model.Recommendation); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRecRepo) ListByOwner(ctx context.Context, email string) ([]model.Recommendation, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.Recommendation); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRecRepo) ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.Recommendation); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRecRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.RecommendationRepository = (*mockRecRepo)(nil)

type mockDonationRepo struct{ mock.Mock }

func (m *mockDonationRepo) Create(ctx context.Context, d *model.Donation) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}

var _ repo.DonationRepository = (*mockDonationRepo)(nil)

type mockProvider struct{ mock.Mock }

func (m *mockProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	args := m.Called(ctx, amountMinor, currency)
	return args.String(0), args.Error(1)
}

var _ payment.Provider = (*mockProvider)(nil)

// passTx выполняет fn без транзакции
type passTx struct{}

func (passTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
