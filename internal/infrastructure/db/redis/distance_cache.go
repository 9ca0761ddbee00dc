package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const distanceTTL = 24 * time.Hour

// DistanceCache caches route distances in Redis so repeated estimates for
// the same origin/destination pair skip the distance-matrix call.
// Key format: distance:<origin>|<destination>
type DistanceCache struct {
	client *redis.Client
}

// NewDistanceCache creates a DistanceCache wrapping the given Redis client.
func NewDistanceCache(client *redis.Client) *DistanceCache {
	return &DistanceCache{client: client}
}

// Get returns the cached distance for the pair. The second return value
// reports whether a cached value was present.
func (c *DistanceCache) Get(ctx context.Context, origin, destination string) (float64, bool, error) {
	val, err := c.client.Get(ctx, c.key(origin, destination)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("distance cache get: %w", err)
	}
	km, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("distance cache decode: %w", err)
	}
	return km, true, nil
}

// Set records the distance for the pair (expires after distanceTTL).
func (c *DistanceCache) Set(ctx context.Context, origin, destination string, km float64) error {
	val := strconv.FormatFloat(km, 'f', -1, 64)
	return c.client.Set(ctx, c.key(origin, destination), val, distanceTTL).Err()
}

func (c *DistanceCache) key(origin, destination string) string {
	return "distance:" + strings.ToLower(origin) + "|" + strings.ToLower(destination)
}
