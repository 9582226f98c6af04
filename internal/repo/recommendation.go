package repo

import (
	"Alternify/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recommendationRepo struct {
	db *gorm.DB
}

// NewRecommendationRepository создаёт реализацию репозитория для Recommendation.
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepo{db: db}
}

func (r *recommendationRepo) Create(ctx context.Context, rec *model.Recommendation) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := conn(ctx, r.db).Create(rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (r *recommendationRepo) ListByQuery(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	return r.listWhere(ctx, "query_id = ?", queryID)
}

func (r *recommendationRepo) ListByOwner(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.listWhere(ctx, "user_email = ?", email)
}

func (r *recommendationRepo) ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.listWhere(ctx, "recommender_email = ?", email)
}

func (r *recommendationRepo) listWhere(ctx context.Context, cond string, arg string) ([]model.Recommendation, error) {
	var out []model.Recommendation
	err := conn(ctx, r.db).Where(cond, arg).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *recommendationRepo) Delete(ctx context.Context, id string) (int64, error) {
	tx := conn(ctx, r.db).Delete(&model.Recommendation{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}
