package city

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

const (
	unknownCountry  = "Unknown"
	defaultPageSize = 10
	maxPageSize     = 100
)

type cityUseCase struct {
	geocodingGateway api.GeocodingGateway
	dbGateway        db.CityGateway
}

func NewCityUseCase(geocodingGateway api.GeocodingGateway, dbGateway db.CityGateway) UseCase {
	return &cityUseCase{
		geocodingGateway: geocodingGateway,
		dbGateway:        dbGateway,
	}
}

// RegisterCity resolves name at the geocoding provider. A city stored under the resolved name gets
// the new country and coordinates, anything else is inserted.
func (uc *cityUseCase) RegisterCity(ctx context.Context, query string) (*model.RegisterCityResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: city is required", model.ErrInvalidInput)
	}

	result, err := uc.geocodingGateway.SearchCity(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %s: %w", query, err)
	}

	name := strings.TrimSpace(result.Name)
	if name == "" {
		name = query
	}
	country := strings.TrimSpace(result.Country)
	if country == "" {
		country = unknownCountry
	}

	existing, err := uc.dbGateway.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find city %s: %w", name, err)
	}

	if existing != nil {
		updated, err := uc.dbGateway.UpdateLocation(ctx, existing.ID, country, result.Latitude, result.Longitude)
		if err != nil {
			return nil, fmt.Errorf("failed to update coordinates of %s: %w", name, err)
		}
		if updated == nil {
			return nil, fmt.Errorf("%w: city %s disappeared while updating its coordinates", model.ErrNotFound, name)
		}

		log.Info(msg.GetMessage("city.coordinates-updated", name, country, result.Latitude, result.Longitude),
			zap.String("city_id", updated.ID))

		return &model.RegisterCityResponse{
			Message: "City coordinates updated",
			Created: false,
			City:    *updated,
		}, nil
	}

	latitude, longitude := result.Latitude, result.Longitude
	created, err := uc.dbGateway.Create(ctx, entity.City{
		Name:      name,
		Country:   country,
		Latitude:  &latitude,
		Longitude: &longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save city %s: %w", name, err)
	}

	log.Info(msg.GetMessage("city.registered", name, country, latitude, longitude),
		zap.String("city_id", created.ID))

	return &model.RegisterCityResponse{
		Message: "City added",
		Created: true,
		City:    *created,
	}, nil
}

// FindAllCities returns a paginated list of cities
func (uc *cityUseCase) FindAllCities(ctx context.Context, page int, size int) (*model.Page[entity.City], error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", model.ErrInvalidInput)
	}
	if size <= 0 {
		size = defaultPageSize
	}
	size = numberutils.ClampInt(size, 1, maxPageSize)
	if page > math.MaxInt32/size {
		return nil, fmt.Errorf("%w: page %d is out of range", model.ErrInvalidInput, page)
	}

	cities, totalElements, err := uc.fetchCitiesAndCountInParallel(ctx, page, size)
	if err != nil {
		return nil, err
	}

	return model.NewPage(cities, page, size, totalElements), nil
}

// fetchCitiesAndCountInParallel runs the page query and the count together; the first failure cancels the other.
func (uc *cityUseCase) fetchCitiesAndCountInParallel(ctx context.Context, page int, size int) ([]entity.City, int64, error) {
	var cities []entity.City
	var totalElements int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if cities, err = uc.dbGateway.FindAll(groupCtx, page, size); err != nil {
			return fmt.Errorf("failed to find cities: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if totalElements, err = uc.dbGateway.CountAll(groupCtx); err != nil {
			return fmt.Errorf("failed to count cities: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	return cities, totalElements, nil
}
