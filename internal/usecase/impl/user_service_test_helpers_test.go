package impl

import (
	"io"
	"log/slog"

	"haven/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Listing: &config.ListingConfig{
			DefaultImageURL: "https://images.example.com/default.jpg",
		},
	}
}
