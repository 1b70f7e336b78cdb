package repository

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoSessionRepository struct {
	col *mongo.Collection
}

// NewMongoSessionRepository returns a MongoDB-backed SessionRepository.
func NewMongoSessionRepository(db *mongo.Database) SessionRepository {
	return &mongoSessionRepository{col: db.Collection(CollectionSessions)}
}

func (r *mongoSessionRepository) Create(ctx context.Context, s *model.Session) error {
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = id
	}
	return nil
}

func (r *mongoSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	s := &model.Session{}
	if err := r.col.FindOne(ctx, bson.M{"token": token}).Decode(s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *mongoSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"token": token})
	return err
}

func (r *mongoSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.col.DeleteMany(ctx, bson.M{"userId": oid})
	return err
}
