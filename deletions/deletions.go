package deletions

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Metadata struct {
	DeletedByUserId *string `bson:"deletedByUserId,omitempty"`
}

// Deletion is the archived copy of a deleted document
type Deletion[T any] struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	DocumentId  string             `bson:"documentId"`
	DeletedTime time.Time          `bson:"deletedTime"`
	Document    T                  `bson:"document"`
	Metadata    `bson:",inline"`
}

// Archive keeps deleted documents of a single type in the <type>_deletions collection
type Archive[T any] interface {
	Initialize(ctx context.Context) error
	Archive(ctx context.Context, documentId string, document T, metadata Metadata) error
	FindByDocumentId(ctx context.Context, documentId string) ([]Deletion[T], error)
}

func CollectionName(documentType string) string {
	return fmt.Sprintf("%s_deletions", documentType)
}

func NewArchive[T any](documentType string, db *mongo.Database, logger *zap.SugaredLogger) Archive[T] {
	return &mongoArchive[T]{
		deletions:    db.Collection(CollectionName(documentType)),
		documentType: documentType,
		logger:       logger,
	}
}

type mongoArchive[T any] struct {
	deletions    *mongo.Collection
	documentType string
	logger       *zap.SugaredLogger
}

func (a *mongoArchive[T]) Initialize(ctx context.Context) error {
	_, err := a.deletions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "documentId", Value: 1}},
			Options: options.Index().SetName(cases.Title(language.English).String(a.documentType) + "Deletion"),
		},
		{
			Keys:    bson.D{{Key: "deletedTime", Value: 1}},
			Options: options.Index().SetName("DeletedTime"),
		},
	})
	return err
}

func (a *mongoArchive[T]) Archive(ctx context.Context, documentId string, document T, metadata Metadata) error {
	deletion := Deletion[T]{
		DocumentId:  documentId,
		DeletedTime: time.Now(),
		Document:    document,
		Metadata:    metadata,
	}

	if _, err := a.deletions.InsertOne(ctx, deletion); err != nil {
		return fmt.Errorf("unable to archive %s %s: %w", a.documentType, documentId, err)
	}

	a.logger.Debugw("archived deleted document", "type", a.documentType, "documentId", documentId)
	return nil
}

func (a *mongoArchive[T]) FindByDocumentId(ctx context.Context, documentId string) ([]Deletion[T], error) {
	cursor, err := a.deletions.Find(ctx, bson.M{"documentId": documentId})
	if err != nil {
		return nil, fmt.Errorf("unable to find archived %s %s: %w", a.documentType, documentId, err)
	}

	result := make([]Deletion[T], 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("unable to decode archived %s %s: %w", a.documentType, documentId, err)
	}
	return result, nil
}
