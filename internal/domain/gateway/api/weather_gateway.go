package api

import (
	"context"

	"weather-dashboard/internal/domain/model/external"
)

// WeatherGateway calls the forecast provider. Errors wrap model.ErrUpstreamUnavailable or
// model.ErrUpstreamDataInvalid.
type WeatherGateway interface {
	// GetCurrentWeather returns a payload whose current_weather section has temperature and weather code.
	GetCurrentWeather(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error)

	// GetForecast returns current conditions plus the hourly temperature series
	// from yesterday to tomorrow in the local timezone of the coordinates.
	GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error)
}

// GeocodingGateway resolves a free text city name.
type GeocodingGateway interface {
	// SearchCity returns the best match, or an error wrapping model.ErrNotFound when there is none.
	SearchCity(ctx context.Context, name string) (*external.GeocodingResult, error)
}
