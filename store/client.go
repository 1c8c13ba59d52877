package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewClient(cfg *Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (*mongo.Client, error) {
	client, err := Connect(context.Background(), cfg.GetConnectionString())
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Infow("disconnecting from the database", "hosts", cfg.Hosts)
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, ContextTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetAppName("dieticians")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongo: %w", err)
	}

	return client, nil
}
