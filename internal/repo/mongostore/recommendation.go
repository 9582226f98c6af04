package mongostore

import (
	"Alternify/internal/model"
	"Alternify/internal/repo"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type recommendationDoc struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	QueryID                 string             `bson:"queryId"`
	RecommendationTitle     string             `bson:"recommendation_title"`
	RecommendedProductName  string             `bson:"recommended_product_name"`
	RecommendedProductImage string             `bson:"recommended_product_image"`
	RecommendationReason    string             `bson:"recommendation_reason"`
	RecommenderEmail        string             `bson:"recommender_email"`
	RecommenderName         string             `bson:"recommender_name,omitempty"`
	QueryTitle              string             `bson:"query_title,omitempty"`
	ProductName             string             `bson:"product_name,omitempty"`
	UserEmail               string             `bson:"user_email"`
	UserName                string             `bson:"user_name,omitempty"`
	CreatedAt               time.Time          `bson:"created_at"`
}

func fromRecommendation(rec *model.Recommendation) recommendationDoc {
	return recommendationDoc{
		QueryID:                 rec.QueryID,
		RecommendationTitle:     rec.RecommendationTitle,
		RecommendedProductName:  rec.RecommendedProductName,
		RecommendedProductImage: rec.RecommendedProductImage,
		RecommendationReason:    rec.RecommendationReason,
		RecommenderEmail:        rec.RecommenderEmail,
		RecommenderName:         rec.RecommenderName,
		QueryTitle:              rec.QueryTitle,
		ProductName:             rec.ProductName,
		UserEmail:               rec.UserEmail,
		UserName:                rec.UserName,
		CreatedAt:               rec.CreatedAt,
	}
}

func (d recommendationDoc) toModel() model.Recommendation {
	return model.Recommendation{
		ID:                      d.ID.Hex(),
		QueryID:                 d.QueryID,
		RecommendationTitle:     d.RecommendationTitle,
		RecommendedProductName:  d.RecommendedProductName,
		RecommendedProductImage: d.RecommendedProductImage,
		RecommendationReason:    d.RecommendationReason,
		RecommenderEmail:        d.RecommenderEmail,
		RecommenderName:         d.RecommenderName,
		QueryTitle:              d.QueryTitle,
		ProductName:             d.ProductName,
		UserEmail:               d.UserEmail,
		UserName:                d.UserName,
		CreatedAt:               d.CreatedAt,
	}
}

type recommendationRepo struct {
	coll *mongo.Collection
}

// NewRecommendationRepository репозиторий рекомендаций поверх коллекции.
func NewRecommendationRepository(coll *mongo.Collection) repo.RecommendationRepository {
	return &recommendationRepo{coll: coll}
}

func (r *recommendationRepo) Create(ctx context.Context, rec *model.Recommendation) (string, error) {
	doc := fromRecommendation(rec)
	doc.ID = primitive.NewObjectID()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	rec.ID = doc.ID.Hex()
	return rec.ID, nil
}

func (r *recommendationRepo) ListByQuery(ctx context.Context, queryID string) ([]model.Recommendation, error) {
	return r.find(ctx, bson.M{"queryId": queryID})
}

func (r *recommendationRepo) ListByOwner(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.find(ctx, bson.M{"user_email": email})
}

func (r *recommendationRepo) ListByRecommender(ctx context.Context, email string) ([]model.Recommendation, error) {
	return r.find(ctx, bson.M{"recommender_email": email})
}

func (r *recommendationRepo) find(ctx context.Context, filter bson.M) ([]model.Recommendation, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []recommendationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.Recommendation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *recommendationRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
