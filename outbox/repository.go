package outbox

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &mongoRepository{
		events: db.Collection(CollectionName),
		logger: logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: repo.Initialize,
	})

	return repo, nil
}

type mongoRepository struct {
	events *mongo.Collection
	logger *zap.SugaredLogger
}

func (r *mongoRepository) Initialize(ctx context.Context) error {
	_, err := r.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "eventType", Value: 1}, {Key: "createdTime", Value: 1}},
		Options: options.Index().SetName("EventTypeCreatedTime"),
	})
	return err
}

func (r *mongoRepository) Create(ctx context.Context, event Event) error {
	if event.Id.IsZero() {
		event.Id = primitive.NewObjectID()
	}
	if event.CreatedTime.IsZero() {
		event.CreatedTime = time.Now()
	}

	if _, err := r.events.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("unable to enqueue %s event: %w", event.EventType, err)
	}

	r.logger.Debugw("enqueued event", "eventType", event.EventType, "eventId", event.Id.Hex())
	return nil
}

func (r *mongoRepository) FindByType(ctx context.Context, eventType EventType) ([]Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdTime", Value: 1}})
	cursor, err := r.events.Find(ctx, bson.M{"eventType": eventType}, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to find %s events: %w", eventType, err)
	}

	events := make([]Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("unable to decode %s events: %w", eventType, err)
	}
	return events, nil
}
