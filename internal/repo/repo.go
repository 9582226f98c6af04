package repo

import (
	"Alternify/internal/model"
	"context"
	"errors"
)

// ErrNotFound запись не найдена (для любого бэкенда).
var ErrNotFound = errors.New("record not found")

// QueryRepository контракт хранилища запросов (queries).
type QueryRepository interface {
	// Create вставляет запрос и возвращает его идентификатор.
	Create(ctx context.Context, q *model.Query) (string, error)
	GetByID(ctx context.Context, id string) (*model.Query, error)

	// Search окно выборки по подстроке product_name без учёта регистра; пустой term: всё.
	Search(ctx context.Context, term string, skip, limit int) ([]model.Query, error)
	// Count полный подсчёт по тому же фильтру, отдельным чтением.
	Count(ctx context.Context, term string) (int64, error)

	ListAll(ctx context.Context) ([]model.Query, error)
	ListByOwner(ctx context.Context, email string) ([]model.Query, error)

	// Upsert заменяет редактируемые поля; если id нет: создаёт запись только с ними.
	Upsert(ctx context.Context, id string, fields model.QueryFields) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)

	// AdjustCount атомарно меняет recommendation_count на delta одной операцией.
	AdjustCount(ctx context.Context, id string, delta int64) error
}

// RecommendationRepository контракт хранилища рекомендаций.
type RecommendationRepository interface {
	Create(ctx context.Context, r *model.Recommendation) (string, error)
	ListByQuery(ctx context.Context, queryID string) ([]model.Recommendation, error)
	// ListByOwner рекомендации к запросам пользователя (поле user_email).
	ListByOwner(ctx context.Context, email string) ([]model.Recommendation, error)
	// ListByRecommender рекомендации, написанные пользователем (recommender_email).
	ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// DonationRepository только вставка, обратно записи не читаются.
type DonationRepository interface {
	Create(ctx context.Context, d *model.Donation) (string, error)
}

// Transactor выполняет fn как одну единицу записи, если бэкенд это умеет.
// Репозитории, вызванные с ctx из fn, работают внутри той же транзакции.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store набор репозиториев одного бэкенда.
type Store struct {
	Queries         QueryRepository
	Recommendations RecommendationRepository
	Donations       DonationRepository
	Tx              Transactor
	Close           func(ctx context.Context) error
}
