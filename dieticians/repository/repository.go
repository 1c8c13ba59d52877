package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/deletions"
	"github.com/tidepool-org/dieticians/dieticians"
	"github.com/tidepool-org/dieticians/patients"
	"github.com/tidepool-org/dieticians/store"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (dieticians.Repository, error) {
	repo := &Repository{
		collection:         db.Collection(dieticians.CollectionName),
		patientsCollection: db.Collection(patients.CollectionName),
		logger:             logger,
		deletions:          NewDeletionsArchive(db, logger),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := repo.Initialize(ctx); err != nil {
				return err
			}
			return repo.deletions.Initialize(ctx)
		},
	})

	return repo, nil
}

// NewDeletionsArchive returns the archive of deleted dieticians
func NewDeletionsArchive(db *mongo.Database, logger *zap.SugaredLogger) deletions.Archive[dieticians.Dietician] {
	return deletions.NewArchive[dieticians.Dietician](DeletionsDocumentType, db, logger)
}

const DeletionsDocumentType = "dietician"

type Repository struct {
	collection         *mongo.Collection
	patientsCollection *mongo.Collection
	logger             *zap.SugaredLogger
	deletions          deletions.Archive[dieticians.Dietician]
}

var _ dieticians.Repository = &Repository{}

func (r *Repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetUnique(true).
				SetName("UniqueDieticianEmail"),
		},
		{
			Keys: bson.D{
				{Key: "createdTime", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("DieticiansByCreatedTime"),
		},
	})
	return err
}

func (r *Repository) List(ctx context.Context) ([]*dieticians.Dietician, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdTime", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing dieticians: %w", err)
	}

	list := make([]*dieticians.Dietician, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding dieticians list: %w", err)
	}

	return list, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*dieticians.Dietician, error) {
	dietician := &dieticians.Dietician{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(dietician)
	if store.IsNotFoundError(err) {
		return nil, dieticians.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching dietician: %w", err)
	}

	return dietician, nil
}

// Save replaces the dietician with the same id or inserts it if it doesn't exist
func (r *Repository) Save(ctx context.Context, dietician *dieticians.Dietician) error {
	now := time.Now()
	if dietician.CreatedTime.IsZero() {
		dietician.CreatedTime = now
	}
	dietician.UpdatedTime = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": dietician.Id}, dietician, opts); err != nil {
		if store.IsDuplicateKeyError(err) {
			return dieticians.ErrEmailInUse
		}
		return fmt.Errorf("error saving dietician: %w", err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id string, metadata deletions.Metadata) error {
	dietician, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = r.deletions.Archive(ctx, dietician.Id, *dietician, metadata); err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("unable to delete dietician: %w", err)
	}
	if res.DeletedCount == int64(0) {
		return dieticians.ErrNotFound
	}

	return nil
}

func (r *Repository) IsEmailInUse(ctx context.Context, email string) (bool, error) {
	selector := bson.M{"email": email}
	opts := options.Count().SetLimit(1)

	count, err := r.collection.CountDocuments(ctx, selector, opts)
	if err != nil {
		return false, fmt.Errorf("error counting dieticians by email: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	count, err = r.patientsCollection.CountDocuments(ctx, selector, opts)
	if err != nil {
		return false, fmt.Errorf("error counting patients by email: %w", err)
	}

	return count > 0, nil
}
