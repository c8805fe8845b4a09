package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis keys for reference-data caching
	CacheKeyWards     = "ref:wards"
	CacheKeyHospitals = "ref:hospitals"

	// Reference data changes rarely; a short TTL keeps staleness bounded
	// without an invalidation protocol.
	referenceTTL = 5 * time.Minute
)

// ReferenceCache is a cache-aside layer for slow-moving reference data (ward
// list, hospital directory). It fails open: every Redis error is logged and
// treated as a miss, so the API never depends on Redis health after startup.
type ReferenceCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewReferenceCache(redisClient *redis.Client, log *logrus.Logger) *ReferenceCache {
	return &ReferenceCache{
		redisClient: redisClient,
		log:         log,
	}
}

// Get unmarshals the cached value for key into dest. Returns false on miss or
// any Redis/decode failure.
func (c *ReferenceCache) Get(ctx context.Context, key string, dest interface{}) bool {
	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Redis get failed for %s: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warnf("Failed to decode cached %s: %+v", key, err)
		return false
	}
	return true
}

// Set stores value under key with the reference TTL. Failures are logged and
// swallowed.
func (c *ReferenceCache) Set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode %s for cache: %+v", key, err)
		return
	}

	if err := c.redisClient.Set(ctx, key, payload, referenceTTL).Err(); err != nil {
		c.log.Warnf("Redis set failed for %s: %+v", key, err)
	}
}

// Invalidate drops keys after a reference-data write.
func (c *ReferenceCache) Invalidate(ctx context.Context, keys ...string) {
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Redis del failed for %v: %+v", keys, err)
	}
}
