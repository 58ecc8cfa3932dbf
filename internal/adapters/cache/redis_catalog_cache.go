package cache

import (
	"context"
	"encoding/json"
	"log"
	"parking-search-service/internal/domain"
	"parking-search-service/internal/platform/obs"
	"parking-search-service/internal/ports"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Redis-backed read-through cache for the listing catalog. A hit skips the
// underlying repository; any cache failure falls back to it, so caching never
// makes the catalog less available.
type RedisCatalogCache struct {
	client *redis.Client
	source ports.ListingRepository
	key    string
	ttl    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, source ports.ListingRepository, key string, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, source: source, key: key, ttl: ttl}
}

func (c *RedisCatalogCache) ListListings(ctx context.Context) (_ []domain.Listing, err error) {
	defer obs.Time(ctx, "catalog.cache.ListListings")(&err)

	payload, err := c.client.Get(ctx, c.key).Bytes()
	if err == nil {
		var listings []domain.Listing
		if err := json.Unmarshal(payload, &listings); err == nil {
			return listings, nil
		}
		log.Printf("catalog cache: corrupt payload key=%s (refreshing)", c.key)
	} else if err != redis.Nil {
		log.Printf("catalog cache: read failed key=%s err=%v", c.key, err)
	}

	listings, err := c.source.ListListings(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(listings); err == nil {
		if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
			log.Printf("catalog cache: write failed key=%s err=%v", c.key, err)
		}
	}

	return listings, nil
}
