package repository

import (
	"context"
	"errors"
	"time"

	"github.com/devfolio/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactRepository defines the persistence interface for contact messages.
// Every mutation returns the post-mutation document so callers can build
// ledger entries from the updated fields.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) (*model.ContactMessage, error)
	SetReplied(ctx context.Context, id string, replied bool) (*model.ContactMessage, error)
	SetReply(ctx context.Context, id, content, by string, at time.Time) (*model.ContactMessage, error)
	SetStatus(ctx context.Context, id, status string) (*model.ContactMessage, error)
	AddTag(ctx context.Context, id, tag string) (*model.ContactMessage, error)
	SetPriority(ctx context.Context, id, priority string) (*model.ContactMessage, error)
	CountByStatus(ctx context.Context) (*model.ContactStatusCounts, error)
}

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	col *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository on the
// contactMessages collection.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{col: db.Collection(CollectionContactMessages)}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

// Save inserts a new contact message document and populates msg.ID.
func (r *MongoContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	res, err := r.col.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}
	return nil
}

func (r *MongoContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	msg := &model.ContactMessage{}
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(msg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}

// List returns contact messages filtered by status and paginated by
// limit/offset, newest first. Status "" or "all" returns all messages.
func (r *MongoContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	filter := bson.D{}
	if opts.Status != "" && opts.Status != "all" {
		filter = append(filter, bson.E{Key: "status", Value: opts.Status})
	}

	cur, err := r.col.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var messages []*model.ContactMessage
	for cur.Next(ctx) {
		m := &model.ContactMessage{}
		if err := cur.Decode(m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, cur.Err()
}

func (r *MongoContactRepository) SetRead(ctx context.Context, id string, read bool) (*model.ContactMessage, error) {
	status := model.StatusNew
	if read {
		status = model.StatusRead
	}
	return r.findUpdate(ctx, id, bson.D{
		{Key: "read", Value: read},
		{Key: "status", Value: status},
	})
}

func (r *MongoContactRepository) SetReplied(ctx context.Context, id string, replied bool) (*model.ContactMessage, error) {
	return r.findUpdate(ctx, id, bson.D{{Key: "replied", Value: replied}})
}

func (r *MongoContactRepository) SetReply(ctx context.Context, id, content, by string, at time.Time) (*model.ContactMessage, error) {
	return r.findUpdate(ctx, id, bson.D{
		{Key: "replied", Value: true},
		{Key: "status", Value: model.StatusReplied},
		{Key: "replyContent", Value: content},
		{Key: "replyDate", Value: at},
		{Key: "replyBy", Value: by},
	})
}

func (r *MongoContactRepository) SetStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	return r.findUpdate(ctx, id, bson.D{{Key: "status", Value: status}})
}

// AddTag adds tag to the message's tag set. $addToSet gives set semantics, so
// repeated calls are no-ops apart from updatedAt.
func (r *MongoContactRepository) AddTag(ctx context.Context, id, tag string) (*model.ContactMessage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	update := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "tags", Value: tag}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}
	return r.decodeAfterUpdate(ctx, oid, update)
}

func (r *MongoContactRepository) SetPriority(ctx context.Context, id, priority string) (*model.ContactMessage, error) {
	return r.findUpdate(ctx, id, bson.D{{Key: "priority", Value: priority}})
}

// CountByStatus aggregates counts per status plus the overall and unread
// totals.
func (r *MongoContactRepository) CountByStatus(ctx context.Context) (*model.ContactStatusCounts, error) {
	counts := &model.ContactStatusCounts{}

	targets := []struct {
		filter bson.M
		dest   *int64
	}{
		{bson.M{}, &counts.All},
		{bson.M{"status": model.StatusNew}, &counts.New},
		{bson.M{"status": model.StatusRead}, &counts.Read},
		{bson.M{"status": model.StatusReplied}, &counts.Replied},
		{bson.M{"status": model.StatusArchived}, &counts.Archived},
		{bson.M{"status": model.StatusDeleted}, &counts.Deleted},
		{bson.M{"read": false}, &counts.Unread},
	}
	for _, t := range targets {
		n, err := r.col.CountDocuments(ctx, t.filter)
		if err != nil {
			return nil, err
		}
		*t.dest = n
	}
	return counts, nil
}

// findUpdate applies a $set mutation (always bumping updatedAt) and returns
// the post-update document.
func (r *MongoContactRepository) findUpdate(ctx context.Context, id string, set bson.D) (*model.ContactMessage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now().UTC()})
	return r.decodeAfterUpdate(ctx, oid, bson.D{{Key: "$set", Value: set}})
}

func (r *MongoContactRepository) decodeAfterUpdate(ctx context.Context, oid primitive.ObjectID, update bson.D) (*model.ContactMessage, error) {
	res := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	msg := &model.ContactMessage{}
	if err := res.Decode(msg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}
