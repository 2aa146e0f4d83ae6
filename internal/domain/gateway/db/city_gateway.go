package db

import (
	"context"
	"time"

	"weather-dashboard/internal/domain/entity"
)

// CityGateway stores cities and their last synced reading. Finders return nil, nil when nothing matches.
type CityGateway interface {
	FindAll(ctx context.Context, page int, size int) ([]entity.City, error)
	FindAllWithKeysetPagination(ctx context.Context, lastID string, size int) ([]entity.City, error)
	CountAll(ctx context.Context) (int64, error)
	FindByName(ctx context.Context, name string) (*entity.City, error)

	Create(ctx context.Context, city entity.City) (*entity.City, error)
	UpdateLocation(ctx context.Context, id string, country string, latitude float64, longitude float64) (*entity.City, error)

	// UpdateCurrentWeather writes temperature, weather code and timestamp in a single statement.
	// It reports false when no city has the given name.
	UpdateCurrentWeather(ctx context.Context, name string, temperature float64, weatherCode int, at time.Time) (bool, error)
}
