package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/patients"
	"github.com/tidepool-org/dieticians/store"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (patients.Repository, error) {
	repo := &Repository{
		collection: db.Collection(patients.CollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type Repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

var _ patients.Repository = &Repository{}

func (r *Repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "dieticianId", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("PatientsByDieticianId"),
		},
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetUnique(true).
				SetName("UniquePatientEmail"),
		},
	})
	return err
}

func (r *Repository) ListByDieticianId(ctx context.Context, dieticianId string) ([]*patients.Patient, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdTime", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"dieticianId": dieticianId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	list := make([]*patients.Patient, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding patients list: %w", err)
	}

	return list, nil
}

func (r *Repository) Create(ctx context.Context, patient *patients.Patient) (*patients.Patient, error) {
	if patient.Id == "" {
		patient.Id = uuid.NewString()
	}
	patient.CreatedTime = time.Now()

	if _, err := r.collection.InsertOne(ctx, patient); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, patients.ErrDuplicate
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	r.logger.Debugw("created patient", "patientId", patient.Id, "dieticianId", patient.DieticianId)
	return patient, nil
}
