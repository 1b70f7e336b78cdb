package repository

import (
	"context"
	"errors"
	"time"

	"github.com/devfolio/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPageViewRepository struct {
	col *mongo.Collection
}

// NewMongoPageViewRepository returns a MongoDB-backed PageViewRepository.
func NewMongoPageViewRepository(db *mongo.Database) PageViewRepository {
	return &mongoPageViewRepository{col: db.Collection(CollectionPageViews)}
}

// Increment relies on the server-side $inc upsert so concurrent increments
// for the same path never lose updates.
func (r *mongoPageViewRepository) Increment(ctx context.Context, path string) (int64, error) {
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "count", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "lastUpdated", Value: time.Now().UTC()}}},
	}
	res := r.col.FindOneAndUpdate(ctx, bson.M{"path": path}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After))

	pv := &model.PageView{}
	if err := res.Decode(pv); err != nil {
		return 0, err
	}
	return pv.Count, nil
}

func (r *mongoPageViewRepository) Get(ctx context.Context, path string) (*model.PageView, error) {
	pv := &model.PageView{}
	if err := r.col.FindOne(ctx, bson.M{"path": path}).Decode(pv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pv, nil
}
