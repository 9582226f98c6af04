package service

import (
	"Alternify/internal/model"
	"Alternify/internal/repo"
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func newSQLiteStore(t *testing.T) *repo.Store {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + uuid.NewString() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	store := repo.NewGormStore(db)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

// Сценарий: запрос → поиск → рекомендация (+1) → удаление рекомендации (-1).
func TestScenario_QueryRecommendationCounter(t *testing.T) {
	store := newSQLiteStore(t)
	logger := zap.NewNop().Sugar()
	queries := NewQueryService(store.Queries, logger)
	recs := NewRecommendationService(store.Recommendations, store.Queries, store.Tx, logger)
	ctx := context.Background()

	q1, err := queries.Create(ctx, model.Query{ProductName: "Widget", UserEmail: "a@x.com"})
	require.NoError(t, err)

	page, err := queries.Search(ctx, "wid", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, q1, page.Items[0].ID)
	assert.Equal(t, int64(1), page.Total)

	rid, err := recs.Create(ctx, model.Recommendation{QueryID: q1, RecommenderEmail: "b@x.com"})
	require.NoError(t, err)

	got, err := queries.Get(ctx, q1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.RecommendationCount)

	n, err := recs.Delete(ctx, rid, q1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = queries.Get(ctx, q1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.RecommendationCount)

	// повторное удаление не уводит счётчик в минус
	_, err = recs.Delete(ctx, rid, q1)
	require.NoError(t, err)
	got, err = queries.Get(ctx, q1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.RecommendationCount)
}

// Счётчик равен числу рекомендаций после серии добавлений и удалений.
func TestScenario_CounterMatchesRows(t *testing.T) {
	store := newSQLiteStore(t)
	logger := zap.NewNop().Sugar()
	queries := NewQueryService(store.Queries, logger)
	recs := NewRecommendationService(store.Recommendations, store.Queries, store.Tx, logger)
	ctx := context.Background()

	qid, err := queries.Create(ctx, model.Query{ProductName: "Kettle"})
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := recs.Create(ctx, model.Recommendation{QueryID: qid})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	for _, id := range ids[:2] {
		_, err := recs.Delete(ctx, id, qid)
		require.NoError(t, err)
	}

	got, err := queries.Get(ctx, qid)
	require.NoError(t, err)
	rows, err := recs.ListByQuery(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, int64(len(rows)), got.RecommendationCount)
	assert.Equal(t, int64(3), got.RecommendationCount)

	// удаление запроса не трогает рекомендации
	_, err = queries.Delete(ctx, qid)
	require.NoError(t, err)
	rows, err = recs.ListByQuery(ctx, qid)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

// Страница за пределами данных пустая, а не первая.
func TestScenario_FarPageIsEmpty(t *testing.T) {
	store := newSQLiteStore(t)
	queries := NewQueryService(store.Queries, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := queries.Create(ctx, model.Query{ProductName: "Widget"})
	require.NoError(t, err)

	for _, page := range []int{2, math.MaxInt / 10, math.MaxInt} {
		res, err := queries.Search(ctx, "", page, 1000)
		require.NoError(t, err)
		assert.Empty(t, res.Items, "page %d", page)
		assert.Equal(t, int64(1), res.Total)
	}
}
