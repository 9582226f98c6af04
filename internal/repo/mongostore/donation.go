package mongostore

import (
	"Alternify/internal/model"
	"Alternify/internal/repo"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type donationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Name          string             `bson:"name"`
	Amount        float64            `bson:"amount"`
	TransactionID string             `bson:"transaction_id"`
	Date          time.Time          `bson:"date"`
}

type donationRepo struct {
	coll *mongo.Collection
}

// NewDonationRepository репозиторий пожертвований поверх коллекции.
func NewDonationRepository(coll *mongo.Collection) repo.DonationRepository {
	return &donationRepo{coll: coll}
}

func (r *donationRepo) Create(ctx context.Context, d *model.Donation) (string, error) {
	doc := donationDoc{
		ID:            primitive.NewObjectID(),
		Email:         d.Email,
		Name:          d.Name,
		Amount:        d.Amount,
		TransactionID: d.TransactionID,
		Date:          d.Date,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	d.ID = doc.ID.Hex()
	return d.ID, nil
}
