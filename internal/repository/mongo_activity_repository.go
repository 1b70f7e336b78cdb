package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoActivityRepository struct {
	col *mongo.Collection
}

// NewMongoActivityRepository returns a MongoDB-backed ActivityRepository.
func NewMongoActivityRepository(db *mongo.Database) ActivityRepository {
	return &mongoActivityRepository{col: db.Collection(CollectionActivities)}
}

func (r *mongoActivityRepository) Insert(ctx context.Context, a *model.Activity) error {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = id
	}
	return nil
}

var newestFirst = bson.D{{Key: "timestamp", Value: -1}}

func (r *mongoActivityRepository) ListRecent(ctx context.Context, limit int) ([]*model.Activity, error) {
	cur, err := r.col.Find(ctx, bson.D{},
		options.Find().SetSort(newestFirst).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	return decodeActivities(ctx, cur)
}

// activityFilter builds the filter document for List. Views are excluded
// unless the caller opts in.
func activityFilter(opts model.ActivityListOptions) bson.D {
	filter := bson.D{}
	if opts.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: opts.Type})
	}
	if !opts.IncludeViews {
		filter = append(filter, bson.E{Key: "action", Value: bson.D{{Key: "$ne", Value: model.ActionView}}})
	}
	return filter
}

func (r *mongoActivityRepository) List(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, int64, error) {
	filter := activityFilter(opts)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(opts.Page-1) * int64(opts.PageSize)
	cur, err := r.col.Find(ctx, filter, options.Find().
		SetSort(newestFirst).
		SetSkip(skip).
		SetLimit(int64(opts.PageSize)))
	if err != nil {
		return nil, 0, err
	}
	items, err := decodeActivities(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func decodeActivities(ctx context.Context, cur *mongo.Cursor) ([]*model.Activity, error) {
	defer cur.Close(ctx)
	var items []*model.Activity
	for cur.Next(ctx) {
		a := &model.Activity{}
		if err := cur.Decode(a); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, cur.Err()
}
