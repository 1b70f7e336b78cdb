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

type mongoSettingsRepository struct {
	col *mongo.Collection
}

// NewMongoSettingsRepository returns a MongoDB-backed SettingsRepository.
func NewMongoSettingsRepository(db *mongo.Database) SettingsRepository {
	return &mongoSettingsRepository{col: db.Collection(CollectionSiteSettings)}
}

func (r *mongoSettingsRepository) All(ctx context.Context) ([]*model.Setting, error) {
	cur, err := r.col.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var settings []*model.Setting
	for cur.Next(ctx) {
		s := &model.Setting{}
		if err := cur.Decode(s); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, cur.Err()
}

func (r *mongoSettingsRepository) FindByKey(ctx context.Context, key string) (*model.Setting, error) {
	s := &model.Setting{}
	if err := r.col.FindOne(ctx, bson.M{"key": key}).Decode(s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *mongoSettingsRepository) Upsert(ctx context.Context, key, value string) (*model.Setting, error) {
	now := time.Now().UTC()
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "value", Value: value},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "key", Value: key},
			{Key: "createdAt", Value: now},
		}},
	}
	res := r.col.FindOneAndUpdate(ctx, bson.M{"key": key}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After))

	s := &model.Setting{}
	if err := res.Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *mongoSettingsRepository) Delete(ctx context.Context, key string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
