package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"haven/config"
	logs "haven/internal/infra/log"
	"haven/internal/infra/persistence/model"
	"haven/internal/infra/persistence/mongo"
	"haven/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

func main() {
	skipPostgres := flag.Bool("skip-postgres", false, "Do not migrate the identity tables")
	skipMongo := flag.Bool("skip-mongo", false, "Do not create the document store indexes")
	timeout := flag.Duration("timeout", time.Minute, "Overall deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, !*skipPostgres, !*skipMongo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run creates the identity tables and the listing indexes. Both steps are idempotent.
func run(ctx context.Context, withPostgres, withMongo bool) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if withPostgres {
		if cfg.Postgres == nil {
			return errors.New("postgres configuration is missing")
		}

		db, err := postgres.Open(cfg, logger)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return errors.WithStack(err)
		}
		defer sqlDB.Close()

		// gen_random_uuid() is built in from PostgreSQL 13.
		if err := db.WithContext(ctx).AutoMigrate(model.IdentityModels()...); err != nil {
			return errors.Wrap(err, "failed to migrate identity tables")
		}
		logger.Info("Identity tables migrated")
	}

	if withMongo {
		client, mongoDB, err := mongo.Connect(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := mongo.EnsureIndexes(ctx, mongoDB); err != nil {
			return err
		}
		logger.Info("Document store indexes ensured", slog.String("database", mongoDB.Name()))
	}

	return nil
}
