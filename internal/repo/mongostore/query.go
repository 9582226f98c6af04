package mongostore

import (
	"Alternify/internal/model"
	"Alternify/internal/repo"
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type queryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductName string             `bson:"product_name"`
	ImageURL    string             `bson:"image_url"`
	Details     string             `bson:"details"`
	QueryTitle  string             `bson:"query_title"`
	Brand       string             `bson:"brand"`
	UserEmail   string             `bson:"user_email,omitempty"`
	UserName    string             `bson:"user_name,omitempty"`
	UserImage   string             `bson:"user_image,omitempty"`
	// после upsert нового документа поля нет, декодируется в 0
	RecommendationCount int64 `bson:"recommendation_count"`
}

func (d queryDoc) toModel() model.Query {
	return model.Query{
		ID:                  d.ID.Hex(),
		ProductName:         d.ProductName,
		ImageURL:            d.ImageURL,
		Details:             d.Details,
		QueryTitle:          d.QueryTitle,
		Brand:               d.Brand,
		UserEmail:           d.UserEmail,
		UserName:            d.UserName,
		UserImage:           d.UserImage,
		RecommendationCount: d.RecommendationCount,
		CreatedAt:           d.ID.Timestamp(),
	}
}

type queryRepo struct {
	coll *mongo.Collection
}

// NewQueryRepository репозиторий запросов поверх коллекции.
func NewQueryRepository(coll *mongo.Collection) repo.QueryRepository {
	return &queryRepo{coll: coll}
}

func (r *queryRepo) Create(ctx context.Context, q *model.Query) (string, error) {
	doc := queryDoc{
		ID:                  primitive.NewObjectID(),
		ProductName:         q.ProductName,
		ImageURL:            q.ImageURL,
		Details:             q.Details,
		QueryTitle:          q.QueryTitle,
		Brand:               q.Brand,
		UserEmail:           q.UserEmail,
		UserName:            q.UserName,
		UserImage:           q.UserImage,
		RecommendationCount: q.RecommendationCount,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	q.ID = doc.ID.Hex()
	return q.ID, nil
}

func (r *queryRepo) GetByID(ctx context.Context, id string) (*model.Query, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var doc queryDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	q := doc.toModel()
	return &q, nil
}

func searchFilter(term string) bson.M {
	if term == "" {
		return bson.M{}
	}
	return bson.M{"product_name": bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}}
}

func (r *queryRepo) Search(ctx context.Context, term string, skip, limit int) ([]model.Query, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	return r.find(ctx, searchFilter(term), opts)
}

func (r *queryRepo) Count(ctx context.Context, term string) (int64, error) {
	return r.coll.CountDocuments(ctx, searchFilter(term))
}

func (r *queryRepo) ListAll(ctx context.Context) ([]model.Query, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *queryRepo) ListByOwner(ctx context.Context, email string) ([]model.Query, error) {
	return r.find(ctx, bson.M{"user_email": email}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *queryRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Query, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []queryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.Query, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *queryRepo) Upsert(ctx context.Context, id string, f model.QueryFields) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	update := bson.M{"$set": bson.M{
		"product_name": f.ProductName,
		"image_url":    f.ImageURL,
		"details":      f.Details,
		"query_title":  f.QueryTitle,
		"brand":        f.Brand,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return 0, err
	}
	return res.MatchedCount + res.UpsertedCount, nil
}

func (r *queryRepo) Delete(ctx context.Context, id string) (int64, error) {
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

func (r *queryRepo) AdjustCount(ctx context.Context, id string, delta int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"recommendation_count": delta}})
	return err
}
