package sitemap

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"
	"github.com/xuyu/goredis"
)

// CacheKey is the fixed slot holding the serialized document set.
const CacheKey = "sitemap:documents"

// Cache stores a serialized document set as a single unit.
// Implementations rearm the entry lifetime on every hit so the
// expiration slides with traffic.
type Cache interface {
	TryGet(key string) ([]string, bool)
	Set(key string, documents []string) error
}

// redisClient is the slice of the goredis API the cache runs on.
type redisClient interface {
	Get(key string) ([]byte, error)
	Set(key, value string, seconds, milliseconds int, mustExists, mustNotExists bool) error
	Expire(key string, seconds int) (bool, error)
}

var _ redisClient = (*goredis.Redis)(nil)

// RedisCache keeps the document set as one JSON payload in redis,
// expiring after the configured window of inactivity.
type RedisCache struct {
	Redis redisClient
	TTL   time.Duration
	Log   *logging.Logger
}

func (c RedisCache) TryGet(key string) ([]string, bool) {
	raw, err := c.Redis.Get(key)
	if err != nil || raw == nil {
		// A failed read downgrades to a miss.
		return nil, false
	}

	var documents []string
	if err := json.Unmarshal(raw, &documents); err != nil {
		return nil, false
	}

	// Sliding expiration: every hit rearms the window. Best effort,
	// the entry just expires sooner when redis refuses.
	if _, err := c.Redis.Expire(key, int(c.TTL.Seconds())); err != nil {
		c.Log.Warningf("sitemap: cache expire failed: %v", err)
	}

	return documents, true
}

func (c RedisCache) Set(key string, documents []string) error {
	encoded, err := json.Marshal(documents)
	if err != nil {
		return err
	}

	return c.Redis.Set(key, string(encoded), int(c.TTL.Seconds()), 0, false, false)
}
