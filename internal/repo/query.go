package repo

import (
	"Alternify/internal/model"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type queryRepo struct {
	db *gorm.DB
}

// NewQueryRepository создаёт реализацию репозитория для Query.
func NewQueryRepository(db *gorm.DB) QueryRepository {
	return &queryRepo{db: db}
}

// Create присваивает id (если пуст) и вставляет запись. Поля не валидируются.
func (r *queryRepo) Create(ctx context.Context, q *model.Query) (string, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if err := conn(ctx, r.db).Create(q).Error; err != nil {
		return "", err
	}
	return q.ID, nil
}

func (r *queryRepo) GetByID(ctx context.Context, id string) (*model.Query, error) {
	var q model.Query
	err := conn(ctx, r.db).First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *queryRepo) filtered(ctx context.Context, term string) *gorm.DB {
	tx := conn(ctx, r.db).Model(&model.Query{})
	if term != "" {
		tx = tx.Where(`LOWER(product_name) LIKE ? ESCAPE '\'`, likePattern(term))
	}
	return tx
}

func (r *queryRepo) Search(ctx context.Context, term string, skip, limit int) ([]model.Query, error) {
	var out []model.Query
	err := r.filtered(ctx, term).
		Order("created_at ASC, id ASC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *queryRepo) Count(ctx context.Context, term string) (int64, error) {
	var n int64
	err := r.filtered(ctx, term).Count(&n).Error
	return n, err
}

func (r *queryRepo) ListAll(ctx context.Context) ([]model.Query, error) {
	var out []model.Query
	err := conn(ctx, r.db).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *queryRepo) ListByOwner(ctx context.Context, email string) ([]model.Query, error) {
	var out []model.Query
	err := conn(ctx, r.db).Where("user_email = ?", email).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

// Upsert одним INSERT ... ON CONFLICT(id) DO UPDATE: счётчик и владелец не трогаются.
func (r *queryRepo) Upsert(ctx context.Context, id string, f model.QueryFields) (int64, error) {
	q := &model.Query{
		ID:          id,
		ProductName: f.ProductName,
		ImageURL:    f.ImageURL,
		Details:     f.Details,
		QueryTitle:  f.QueryTitle,
		Brand:       f.Brand,
	}
	tx := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(append(append([]string{}, model.EditableColumns...), "updated_at")),
	}).Create(q)
	return tx.RowsAffected, tx.Error
}

// Delete удаляет только запрос; рекомендации остаются.
func (r *queryRepo) Delete(ctx context.Context, id string) (int64, error) {
	tx := conn(ctx, r.db).Delete(&model.Query{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

func (r *queryRepo) AdjustCount(ctx context.Context, id string, delta int64) error {
	return conn(ctx, r.db).Model(&model.Query{}).
		Where("id = ?", id).
		UpdateColumn("recommendation_count", gorm.Expr("recommendation_count + ?", delta)).Error
}

// likePattern экранирует спецсимволы LIKE и приводит к нижнему регистру.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
