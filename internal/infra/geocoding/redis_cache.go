package geocoding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	deliverycontext "haven/internal/delivery/context"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix  = "geocode"
	defaultCacheTTL = 30 * 24 * time.Hour
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache stores points as JSON [lng, lat] under a hash of the normalized location.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) ResultCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, location string) (orb.Point, bool) {
	data, err := c.client.Get(ctx, cacheKey(location)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log(ctx).Debug("Geocode cache read failed", slog.Any("error", err))
		}

		return orb.Point{}, false
	}

	var point orb.Point
	if err := json.Unmarshal(data, &point); err != nil {
		return orb.Point{}, false
	}

	return point, true
}

func (c *redisCache) Set(ctx context.Context, location string, point orb.Point) {
	data, err := json.Marshal(point)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, cacheKey(location), data, c.ttl).Err(); err != nil {
		c.log(ctx).Debug("Geocode cache write failed", slog.Any("error", err))
	}
}

func (c *redisCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func cacheKey(location string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(location)), " ")
	sum := sha1.Sum([]byte(normalized))

	return cacheKeyPrefix + ":" + hex.EncodeToString(sum[:])
}
