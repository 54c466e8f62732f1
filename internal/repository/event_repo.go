package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"webcal/internal/models"
)

// TimeRange filters events by start_time, inclusive on both ends.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

type EventRepository interface {
	FindAll(ctx context.Context, rng *TimeRange) ([]models.Event, error)
	Insert(ctx context.Context, event *models.Event) error
	Replace(ctx context.Context, id primitive.ObjectID, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

type mongoEventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &mongoEventRepository{coll: db.Collection("events")}
}

func (r *mongoEventRepository) FindAll(ctx context.Context, rng *TimeRange) ([]models.Event, error) {
	filter := bson.M{}
	if rng != nil {
		filter["start_time"] = bson.M{"$gte": rng.Start, "$lte": rng.End}
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventRepository) Insert(ctx context.Context, event *models.Event) error {
	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoEventRepository) Replace(ctx context.Context, id primitive.ObjectID, event *models.Event) (*models.Event, error) {
	// Full replace of the caller-owned fields. created_at stays untouched;
	// updated_at comes in on the event argument.
	update := bson.M{"$set": bson.M{
		"title":       event.Title,
		"description": event.Description,
		"start_time":  event.StartTime,
		"end_time":    event.EndTime,
		"all_day":     event.AllDay,
		"color":       event.Color,
		"updated_at":  event.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Event
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoEventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
