// Package mongostore: реализация хранилища поверх MongoDB (коллекции queries,
// recommendations, donations). Идентификаторы: ObjectID в hex-виде.
package mongostore

import (
	"Alternify/internal/repo"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	queriesCollection         = "queries"
	recommendationsCollection = "recommendations"
	donationsCollection       = "donations"
)

// NewStore подключается к MongoDB и собирает repo.Store.
func NewStore(ctx context.Context, uri, dbName string) (*repo.Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	return &repo.Store{
		Queries:         NewQueryRepository(db.Collection(queriesCollection)),
		Recommendations: NewRecommendationRepository(db.Collection(recommendationsCollection)),
		Donations:       NewDonationRepository(db.Collection(donationsCollection)),
		Tx:              directTx{},
		Close:           client.Disconnect,
	}, nil
}

// directTx выполняет fn без транзакции: одиночный сервер MongoDB их не поддерживает,
// поэтому пара "вставка + $inc" здесь остаётся двумя независимыми записями.
type directTx struct{}

func (directTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
