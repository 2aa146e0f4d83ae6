package city

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// RegisterCity geocodes a free text name and stores the city, or refreshes the coordinates of a stored one
	RegisterCity(ctx context.Context, name string) (*model.RegisterCityResponse, error)

	// FindAllCities returns a page of stored cities, page is 0-based
	FindAllCities(ctx context.Context, page int, size int) (*model.Page[entity.City], error)
}
