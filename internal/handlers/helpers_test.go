package handlers_test

import (
	"Alternify/internal/auth"
	"Alternify/internal/config"
	"Alternify/internal/handlers"
	"Alternify/internal/middleware"
	"Alternify/internal/model"
	"Alternify/internal/payment"
	"Alternify/internal/repo"
	"Alternify/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockQueryRepo struct{ mock.Mock }

func (m *hMockQueryRepo) Create(ctx context.Context, q *model.Query) (string, error) {
	args := m.Called(ctx, q)
	return args.String(0), args.Error(1)
}
func (m *hMockQueryRepo) GetByID(ctx context.Context, id string) (*model.Query, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockQueryRepo) Search(ctx context.Context, term string, skip, limit int) ([]model.Query, error) {
	args := m.Called(ctx, term, skip, limit)
	if v, ok := args.Get(0).([]model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockQueryRepo) Count(ctx context.Context, term string) (int64, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockQueryRepo) ListAll(ctx context.Context) ([]model.Query, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockQueryRepo) ListByOwner(ctx context.Context, email string) ([]model.Query, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.Query); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockQueryRepo) Upsert(ctx context.Context, id string, f model.QueryFields) (int64, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockQueryRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockQueryRepo) AdjustCount(ctx context.Context, id string, delta int64) error {
	return m.Called(ctx, id, delta).Error(0)
}

var _ repo.QueryRepository = (*hMockQueryRepo)(nil)

type hMockRecRepo struct{ mock.Mock }

func (m *hMockRecRepo) Create(ctx context.Context, r *model.Recommendation) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}
func (m *hMockRecRepo) ListByQuery(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	args := m.Called(ctx, queryID)
	if v, ok := args.Get(0).([]model.Recommendation); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockRecRepo) ListByOwner(ctx context.Context, email string) ([]model.Recommendation, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.Recommendation); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockRecRepo) ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.Recommendation); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockRecRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.RecommendationRepository = (*hMockRecRepo)(nil)

type hMockDonationRepo struct{ mock.Mock }

func (m *hMockDonationRepo) Create(ctx context.Context, d *model.Donation) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}

var _ repo.DonationRepository = (*hMockDonationRepo)(nil)

type hMockProvider struct{ mock.Mock }

func (m *hMockProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	args := m.Called(ctx, amountMinor, currency)
	return args.String(0), args.Error(1)
}

var _ payment.Provider = (*hMockProvider)(nil)

type passTx struct{}

func (passTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type testDeps struct {
	cfg       *config.Config
	tokens    *auth.TokenService
	queries   *hMockQueryRepo
	recs      *hMockRecRepo
	donations *hMockDonationRepo
	provider  *hMockProvider
}

func newTestRouter(t *testing.T, cfg *config.Config) (http.Handler, *testDeps) {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{AuthSecret: "test-secret", PaymentCurrency: "usd"}
	}
	logger := zap.NewNop().Sugar()
	d := &testDeps{
		cfg:       cfg,
		tokens:    auth.NewTokenService(cfg.AuthSecret),
		queries:   &hMockQueryRepo{},
		recs:      &hMockRecRepo{},
		donations: &hMockDonationRepo{},
		provider:  &hMockProvider{},
	}

	h := handlers.NewHandler(handlers.Services{
		Queries:         service.NewQueryService(d.queries, logger),
		Recommendations: service.NewRecommendationService(d.recs, d.queries, passTx{}, logger),
		Donations:       service.NewDonationService(d.provider, d.donations, cfg.PaymentCurrency, logger),
		Tokens:          d.tokens,
	}, logger, cfg)
	return h.Router, d
}

func addAuth(t *testing.T, req *http.Request, tokens *auth.TokenService, email string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, tokens, email, false)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
