package weather

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// ReadCurrentWeather returns the stored reading of a city, enriched with live wind speed and
	// the 13 point hourly window around now. Enrichment is best effort.
	ReadCurrentWeather(ctx context.Context, city string) (*model.CurrentWeatherResponse, error)

	// SyncCurrentWeather fetches current conditions at the coordinates and stores them on the city
	SyncCurrentWeather(ctx context.Context, request model.SyncWeatherDTO) (*model.SyncWeatherResponse, error)

	// SyncCity syncs a stored city with its own coordinates. Cities without coordinates are skipped.
	SyncCity(ctx context.Context, city entity.City) error

	// EnqueueAllCities pages through every city and enqueues the ones with coordinates for sync
	EnqueueAllCities(ctx context.Context, requestID string) (int, error)
}
