package model

import (
	"time"

	"weather-dashboard/internal/domain/conditions"
	"weather-dashboard/internal/domain/entity"
)

// SyncWeatherDTO is the body of POST /weather/update.
type SyncWeatherDTO struct {
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// SyncWeatherResponse is the reading written by a sync.
type SyncWeatherResponse struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weatherCode"`
}

// CurrentWeatherResponse is the cached reading of a city enriched with live data.
// WindSpeed is nil and HourlyData empty when enrichment was not possible.
type CurrentWeatherResponse struct {
	City           string                `json:"city"`
	Country        string                `json:"country"`
	Temperature    *float64              `json:"temperature"`
	WeatherCode    *int                  `json:"weatherCode"`
	LastUpdated    *time.Time            `json:"lastUpdated"`
	LastUpdatedAgo *string               `json:"lastUpdatedAgo"`
	Condition      *conditions.Condition `json:"condition"`
	IsDay          bool                  `json:"isDay"`
	Timezone       string                `json:"timezone"`
	WindSpeed      *float64              `json:"windSpeed"`
	HourlyData     []entity.HourlyPoint  `json:"hourlyData"`
}

// RegisterCityDTO is the body of POST /geocode.
type RegisterCityDTO struct {
	City string `json:"city"`
}

// RegisterCityResponse describes the stored city after a geocoding lookup.
type RegisterCityResponse struct {
	Message string      `json:"message"`
	Created bool        `json:"created"`
	City    entity.City `json:"city"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
