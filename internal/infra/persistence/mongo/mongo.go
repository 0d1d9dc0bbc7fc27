// Package mongo contains the document store holding listings and reviews.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"haven/config"
	"haven/internal/domain/lifecycle"
	"haven/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	listingsCollection = "listings"
	reviewsCollection  = "reviews"

	defaultDatabase       = "haven_hop"
	defaultConnectTimeout = 10 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the application database. The client is
// verified on start and disconnected on stop.
func New(params Params) (*mongo.Database, error) {
	client, db, err := Connect(params.Config)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", db.Name()))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return db, nil
}

// Connect creates a client without lifecycle hooks, for one-shot commands.
func Connect(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Mongo == nil || cfg.Mongo.URI == "" {
		return nil, nil, errors.New("mongo configuration is missing")
	}

	timeout := cfg.Mongo.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	name := cfg.Mongo.Database
	if name == "" {
		name = defaultDatabase
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	return client, client.Database(name), nil
}

// EnsureIndexes creates the indexes the listing queries rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(listingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "geometry", Value: "2dsphere"}}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create listing indexes")
	}

	_, err = db.Collection(reviewsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create review indexes")
	}

	return nil
}
