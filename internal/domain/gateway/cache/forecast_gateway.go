package cache

import (
	"context"

	"weather-dashboard/internal/domain/model/external"
)

// ForecastCacheGateway keeps recent forecast payloads per coordinate pair.
// Get returns (nil, nil) on a miss.
type ForecastCacheGateway interface {
	Get(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error)
	Set(ctx context.Context, latitude float64, longitude float64, forecast *external.ForecastResponse) error
}
