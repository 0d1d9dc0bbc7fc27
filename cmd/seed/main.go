package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"haven/config"
	"haven/internal/domain/entity"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	"haven/internal/infra/geocoding"
	logs "haven/internal/infra/log"
	"haven/internal/infra/persistence/mongo"
	"haven/internal/infra/persistence/postgres"
	"haven/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

//go:embed listings.json
var sampleListings []byte

type sampleListing struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	Country     string  `json:"country"`
	Category    string  `json:"category"`
}

// locateFunc resolves a sample location to coordinates.
type locateFunc func(ctx context.Context, location string) orb.Point

func main() {
	geocode := flag.Bool("geocode", false, "Resolve sample locations through the geocoder instead of using the default point")
	flag.Parse()

	if err := run(context.Background(), *geocode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run replaces every listing with the samples, owned by the earliest registered user.
func run(ctx context.Context, geocode bool) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
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

	client, mongoDB, err := mongo.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	owner, err := postgres.NewUserRepository(db).FindFirst(ctx)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.New("no user found, sign up first and then seed")
	}
	if err != nil {
		return err
	}

	locate := func(context.Context, string) orb.Point { return service.DefaultPoint }
	if geocode {
		locate = geocoding.NewGeocoder(geocoding.Params{Config: cfg, Logger: logger}).Geocode
	}

	defaultImage := entity.Image{URL: cfg.Listing.DefaultImageURL, Filename: impl.DefaultImageFilename}
	listings, err := buildListings(ctx, sampleListings, owner.ID, defaultImage, locate)
	if err != nil {
		return err
	}

	listingRepo := mongo.NewListingRepository(mongoDB)
	removed, err := listingRepo.DeleteAll(ctx)
	if err != nil {
		return err
	}
	if err := listingRepo.CreateMany(ctx, listings); err != nil {
		return err
	}

	logger.Info("Sample listings loaded",
		slog.Int64("removed", removed),
		slog.Int("inserted", len(listings)),
		slog.String("owner", owner.Username))

	return nil
}

func buildListings(ctx context.Context, raw []byte, ownerID uuid.UUID, image entity.Image, locate locateFunc) ([]*entity.Listing, error) {
	var samples []sampleListing
	if err := json.Unmarshal(raw, &samples); err != nil {
		return nil, errors.Wrap(err, "failed to parse sample listings")
	}

	listings := make([]*entity.Listing, 0, len(samples))
	for _, sample := range samples {
		category := entity.Category(sample.Category)
		if !category.Valid() {
			return nil, errors.Errorf("sample %q has unknown category %q", sample.Title, sample.Category)
		}

		listings = append(listings, &entity.Listing{
			Title:       sample.Title,
			Description: sample.Description,
			Image:       image,
			Price:       sample.Price,
			Location:    sample.Location,
			Country:     sample.Country,
			Category:    category,
			Geometry:    locate(ctx, sample.Location),
			OwnerID:     ownerID,
			ReviewIDs:   []string{},
		})
	}

	return listings, nil
}
