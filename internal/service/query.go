package service

import (
	"Alternify/internal/model"
	"Alternify/internal/repo"
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

// QueryService бизнес-логика запросов (queries).
type QueryService struct {
	repo   repo.QueryRepository
	logger *zap.SugaredLogger
}

func NewQueryService(r repo.QueryRepository, logger *zap.SugaredLogger) *QueryService {
	return &QueryService{repo: r, logger: logger}
}

// SearchPage окно поиска и полный счётчик по тому же фильтру.
// Это два отдельных чтения, под конкурентной записью они могут расходиться.
type SearchPage struct {
	Items []model.Query
	Total int64
}

// Window переводит страницу (с 1) и размер в skip/limit.
func Window(page, size int) (skip, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// skip не должен переполниться: дальняя страница просто пустая
	if page-1 > math.MaxInt/size {
		page = math.MaxInt/size + 1
	}
	return (page - 1) * size, size
}

// Create вставляет запрос со счётчиком 0. Обязательные поля не проверяются.
func (s *QueryService) Create(ctx context.Context, q model.Query) (string, error) {
	q.ID = ""
	q.RecommendationCount = 0
	id, err := s.repo.Create(ctx, &q)
	if err != nil {
		return "", fmt.Errorf("create query: %w", err)
	}
	return id, nil
}

func (s *QueryService) Get(ctx context.Context, id string) (*model.Query, error) {
	q, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get query %s: %w", id, err)
	}
	return q, nil
}

// Search ищет по подстроке product_name; page: с единицы.
func (s *QueryService) Search(ctx context.Context, term string, page, size int) (SearchPage, error) {
	skip, limit := Window(page, size)
	items, err := s.repo.Search(ctx, term, skip, limit)
	if err != nil {
		return SearchPage{}, fmt.Errorf("search queries: %w", err)
	}
	total, err := s.repo.Count(ctx, term)
	if err != nil {
		return SearchPage{}, fmt.Errorf("count queries: %w", err)
	}
	return SearchPage{Items: nonNil(items), Total: total}, nil
}

func (s *QueryService) Count(ctx context.Context, term string) (int64, error) {
	n, err := s.repo.Count(ctx, term)
	if err != nil {
		return 0, fmt.Errorf("count queries: %w", err)
	}
	return n, nil
}

func (s *QueryService) ListAll(ctx context.Context) ([]model.Query, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	return nonNil(items), nil
}

func (s *QueryService) ListByOwner(ctx context.Context, email string) ([]model.Query, error) {
	items, err := s.repo.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list queries of %s: %w", email, err)
	}
	return nonNil(items), nil
}

// Update полностью заменяет редактируемые поля; несуществующий id создаётся.
func (s *QueryService) Update(ctx context.Context, id string, fields model.QueryFields) (int64, error) {
	n, err := s.repo.Upsert(ctx, id, fields)
	if err != nil {
		return 0, fmt.Errorf("upsert query %s: %w", id, err)
	}
	return n, nil
}

// Delete удаляет запрос. Рекомендации к нему не удаляются.
func (s *QueryService) Delete(ctx context.Context, id string) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete query %s: %w", id, err)
	}
	if n > 0 {
		s.logger.Infow("query deleted, recommendations kept", "query_id", id)
	}
	return n, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
