package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ContextTimeout bounds connecting to and pinging the database
var ContextTimeout = 20 * time.Second

func NewDatabase(client *mongo.Client, cfg *Config) (*mongo.Database, error) {
	if cfg.DatabaseName == "" {
		return nil, errors.New("database name is required")
	}
	return client.Database(cfg.DatabaseName), nil
}

// Ping checks that the primary of the database deployment is reachable
func Ping(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, ContextTimeout)
	defer cancel()

	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("unable to ping database %s: %w", db.Name(), err)
	}
	return nil
}

func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
