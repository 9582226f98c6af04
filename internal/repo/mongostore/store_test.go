package mongostore

import (
	"Alternify/internal/model"
	"Alternify/internal/repo"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newTestStore поднимает хранилище на отдельной базе; без MONGO_TEST_URI тест пропускается.
func newTestStore(t *testing.T) *repo.Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	store, err := NewStore(ctx, uri, "alternify_test_"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })
	return store
}

func TestMongoStore_CounterRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	qid, err := store.Queries.Create(ctx, &model.Query{ProductName: "Widget", UserEmail: "a@x.com"})
	require.NoError(t, err)

	found, err := store.Queries.Search(ctx, "wid", 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, qid, found[0].ID)

	rid, err := store.Recommendations.Create(ctx, &model.Recommendation{QueryID: qid, RecommenderEmail: "b@x.com"})
	require.NoError(t, err)
	require.NoError(t, store.Queries.AdjustCount(ctx, qid, 1))

	q, err := store.Queries.GetByID(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.RecommendationCount)

	n, err := store.Recommendations.Delete(ctx, rid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, store.Queries.AdjustCount(ctx, qid, -1))

	q, err = store.Queries.GetByID(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), q.RecommendationCount)
}

func TestMongoStore_UpsertNewDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := primitive.NewObjectID().Hex()
	_, err := store.Queries.Upsert(ctx, id, model.QueryFields{ProductName: "fresh"})
	require.NoError(t, err)

	q, err := store.Queries.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "fresh", q.ProductName)
	assert.Equal(t, int64(0), q.RecommendationCount)

	_, err = store.Queries.GetByID(ctx, "not-an-object-id")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrNotFound)
}
