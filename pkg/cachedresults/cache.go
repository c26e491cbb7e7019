package cachedresults

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// notFoundValue is cached for lookups that found nothing
const notFoundValue = "N/A"

type Cache struct {
	Cache *cache.Cache[string]

	// Namespace separates entries built from different catalogues
	Namespace string
}

func (c *Cache) Setup(client *redis.Client, namespace string, expiration time.Duration) {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	c.Cache = cache.New[string](redisStore)
	c.Namespace = namespace
}

// Get returns the cached value for key, calling build and storing its result
// on a miss. build reports found=false for absent records, which are cached too.
func (c *Cache) Get(ctx context.Context, key string, build func() (string, bool, error)) (string, bool, error) {
	fullKey := fmt.Sprintf("%s:%s", c.Namespace, key)

	cacheValue, err := c.Cache.Get(ctx, fullKey)
	if err == nil {
		if cacheValue == notFoundValue {
			return "", false, nil
		}
		return cacheValue, true, nil
	}

	value, found, err := build()
	if err != nil {
		return "", false, err
	}

	storeValue := value
	if !found {
		storeValue = notFoundValue
	}
	if err := c.Cache.Set(ctx, fullKey, storeValue); err != nil {
		log.Error().Err(err).Str("key", fullKey).Msg("Failed to store cached result")
	}

	return value, found, nil
}
