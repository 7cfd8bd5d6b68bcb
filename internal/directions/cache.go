package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backend-walkloop/internal/shared/geo"

	"github.com/redis/go-redis/v9"
)

// CachedProvider decorates a Provider with a redis edge cache so repeated
// generation around the same start point reuses directions lookups. Redis
// being down or nil just falls through to the inner provider.
type CachedProvider struct {
	inner Provider
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedProvider(inner Provider, redisClient *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, redis: redisClient, ttl: ttl}
}

func (p *CachedProvider) Walk(ctx context.Context, from, to geo.Point) (*Leg, error) {
	if p.redis == nil {
		return p.inner.Walk(ctx, from, to)
	}

	key := edgeKey(from, to)
	if raw, err := p.redis.Get(ctx, key).Bytes(); err == nil {
		var leg Leg
		if err := json.Unmarshal(raw, &leg); err == nil {
			return &leg, nil
		}
	}

	leg, err := p.inner.Walk(ctx, from, to)
	if err != nil || leg == nil {
		return leg, err
	}

	if payload, err := json.Marshal(leg); err == nil {
		_ = p.redis.Set(ctx, key, payload, p.ttl).Err()
	}
	return leg, nil
}

// edgeKey rounds endpoints to ~1 m so jittery starts still hit the cache.
func edgeKey(from, to geo.Point) string {
	return fmt.Sprintf("directions:%.5f,%.5f:%.5f,%.5f", from.Lat, from.Lng, to.Lat, to.Lng)
}
