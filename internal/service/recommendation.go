package service

import (
	"Alternify/internal/model"
	"Alternify/internal/repo"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RecommendationService рекомендации и денормализованный счётчик на Query.
type RecommendationService struct {
	recs    repo.RecommendationRepository
	queries repo.QueryRepository
	tx      repo.Transactor
	logger  *zap.SugaredLogger
}

func NewRecommendationService(
	recs repo.RecommendationRepository,
	queries repo.QueryRepository,
	tx repo.Transactor,
	logger *zap.SugaredLogger,
) *RecommendationService {
	return &RecommendationService{recs: recs, queries: queries, tx: tx, logger: logger}
}

// Create вставляет рекомендацию и увеличивает recommendation_count родителя на 1.
// Обе записи идут в одной транзакции, если бэкенд её поддерживает.
func (s *RecommendationService) Create(ctx context.Context, rec model.Recommendation) (string, error) {
	rec.ID = ""
	var id string
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.recs.Create(ctx, &rec)
		if err != nil {
			return fmt.Errorf("create recommendation: %w", err)
		}
		if err := s.queries.AdjustCount(ctx, rec.QueryID, 1); err != nil {
			return fmt.Errorf("increment count of %s: %w", rec.QueryID, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("recommendation create failed", "query_id", rec.QueryID, "error", err)
		return "", err
	}
	return id, nil
}

// Delete удаляет рекомендацию и уменьшает счётчик parentQueryID на 1.
// Родитель передаётся вызывающим и не сверяется с удаляемой записью.
// Если ничего не удалено, счётчик не трогается.
func (s *RecommendationService) Delete(ctx context.Context, id, parentQueryID string) (int64, error) {
	var deleted int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		n, err := s.recs.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete recommendation %s: %w", id, err)
		}
		deleted = n
		if n == 0 || parentQueryID == "" {
			return nil
		}
		if err := s.queries.AdjustCount(ctx, parentQueryID, -1); err != nil {
			return fmt.Errorf("decrement count of %s: %w", parentQueryID, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("recommendation delete failed", "id", id, "query_id", parentQueryID, "error", err)
		return 0, err
	}
	return deleted, nil
}

func (s *RecommendationService) ListByQuery(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	items, err := s.recs.ListByQuery(ctx, queryID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations of %s: %w", queryID, err)
	}
	return nonNil(items), nil
}

// ListForOwner рекомендации, адресованные автору запросов (user_email).
func (s *RecommendationService) ListForOwner(ctx context.Context, email string) ([]model.Recommendation, error) {
	items, err := s.recs.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list recommendations for %s: %w", email, err)
	}
	return nonNil(items), nil
}

// ListByRecommender рекомендации, написанные пользователем (recommender_email).
func (s *RecommendationService) ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	items, err := s.recs.ListByRecommender(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list recommendations by %s: %w", email, err)
	}
	return nonNil(items), nil
}
