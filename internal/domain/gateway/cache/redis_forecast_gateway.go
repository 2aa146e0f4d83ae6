package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/redis"
)

const forecastCacheName = "forecast"

type redisForecastGateway struct {
	cache *redis.Cache
}

// NewRedisForecastGateway stores forecasts in Redis for ttl
func NewRedisForecastGateway(client *redis.Client, ttl time.Duration) ForecastCacheGateway {
	return &redisForecastGateway{
		cache: redis.NewCache(client, forecastCacheName, ttl),
	}
}

func (g *redisForecastGateway) Get(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	var forecast external.ForecastResponse
	if err := g.cache.Get(ctx, coordinateKey(latitude, longitude), &forecast); err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	return &forecast, nil
}

func (g *redisForecastGateway) Set(ctx context.Context, latitude float64, longitude float64, forecast *external.ForecastResponse) error {
	return g.cache.Set(ctx, coordinateKey(latitude, longitude), forecast)
}

// coordinateKey rounds to four decimals, about 11 m, so float noise maps to one entry.
func coordinateKey(latitude float64, longitude float64) string {
	return fmt.Sprintf("%.4f,%.4f", latitude, longitude)
}
