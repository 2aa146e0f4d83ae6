package city

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/internal/testutils"
)

func newUseCase() (UseCase, *testutils.MockGeocodingGateway, *testutils.MockCityGateway) {
	geocoding := new(testutils.MockGeocodingGateway)
	cities := new(testutils.MockCityGateway)
	return NewCityUseCase(geocoding, cities), geocoding, cities
}

func TestRegisterCity_Validation(t *testing.T) {
	useCase, geocoding, _ := newUseCase()

	_, err := useCase.RegisterCity(context.Background(), "  ")

	assert.ErrorIs(t, err, model.ErrInvalidInput)
	geocoding.AssertNotCalled(t, "SearchCity", mock.Anything, mock.Anything)
}

func TestRegisterCity_CreatesNewCity(t *testing.T) {
	useCase, geocoding, cities := newUseCase()
	geocoding.On("SearchCity", mock.Anything, "paris").
		Return(&external.GeocodingResult{Name: "Paris", Country: "France", Latitude: 48.85, Longitude: 2.35}, nil)
	cities.On("FindByName", mock.Anything, "Paris").Return(nil, nil)
	cities.On("Create", mock.Anything, entity.City{
		Name:      "Paris",
		Country:   "France",
		Latitude:  testutils.Float(48.85),
		Longitude: testutils.Float(2.35),
	}).Return(&entity.City{ID: "c1", Name: "Paris", Country: "France"}, nil)

	response, err := useCase.RegisterCity(context.Background(), " paris ")

	require.NoError(t, err)
	assert.True(t, response.Created)
	assert.Equal(t, "c1", response.City.ID)
	cities.AssertNotCalled(t, "UpdateLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterCity_RefreshesExistingCity(t *testing.T) {
	useCase, geocoding, cities := newUseCase()
	geocoding.On("SearchCity", mock.Anything, "Toronto").
		Return(&external.GeocodingResult{Name: "Toronto", Country: "Canada", Latitude: 43.70011, Longitude: -79.4163}, nil)
	cities.On("FindByName", mock.Anything, "Toronto").Return(&entity.City{ID: "c7", Name: "Toronto"}, nil)
	cities.On("UpdateLocation", mock.Anything, "c7", "Canada", 43.70011, -79.4163).
		Return(&entity.City{ID: "c7", Name: "Toronto", Country: "Canada"}, nil)

	response, err := useCase.RegisterCity(context.Background(), "Toronto")

	require.NoError(t, err)
	assert.False(t, response.Created)
	assert.Equal(t, "c7", response.City.ID)
	cities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCity_CityRemovedDuringUpdate(t *testing.T) {
	useCase, geocoding, cities := newUseCase()
	geocoding.On("SearchCity", mock.Anything, "Toronto").
		Return(&external.GeocodingResult{Name: "Toronto", Country: "Canada", Latitude: 43.7, Longitude: -79.4}, nil)
	cities.On("FindByName", mock.Anything, "Toronto").Return(&entity.City{ID: "c7", Name: "Toronto"}, nil)
	cities.On("UpdateLocation", mock.Anything, "c7", "Canada", 43.7, -79.4).Return(nil, nil)

	response, err := useCase.RegisterCity(context.Background(), "Toronto")

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Nil(t, response)
}

func TestRegisterCity_FallbackNames(t *testing.T) {
	useCase, geocoding, cities := newUseCase()
	geocoding.On("SearchCity", mock.Anything, "Springfield").
		Return(&external.GeocodingResult{Latitude: 39.8, Longitude: -89.6}, nil)
	cities.On("FindByName", mock.Anything, "Springfield").Return(nil, nil)
	cities.On("Create", mock.Anything, mock.MatchedBy(func(city entity.City) bool {
		return city.Name == "Springfield" && city.Country == "Unknown"
	})).Return(&entity.City{ID: "c2", Name: "Springfield", Country: "Unknown"}, nil)

	response, err := useCase.RegisterCity(context.Background(), "Springfield")

	require.NoError(t, err)
	assert.Equal(t, "Unknown", response.City.Country)
}

func TestRegisterCity_GeocodingErrors(t *testing.T) {
	for _, sentinel := range []error{model.ErrNotFound, model.ErrUpstreamUnavailable} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			useCase, geocoding, cities := newUseCase()
			geocoding.On("SearchCity", mock.Anything, "Atlantis").Return(nil, fmt.Errorf("%w: provider", sentinel))

			_, err := useCase.RegisterCity(context.Background(), "Atlantis")

			assert.ErrorIs(t, err, sentinel)
			cities.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
		})
	}
}

func TestFindAllCities(t *testing.T) {
	ctx := context.Background()

	t.Run("default size", func(t *testing.T) {
		useCase, _, cities := newUseCase()
		cities.On("FindAll", mock.Anything, 0, 10).Return([]entity.City{{ID: "c1"}, {ID: "c2"}}, nil)
		cities.On("CountAll", mock.Anything).Return(int64(12), nil)

		page, err := useCase.FindAllCities(ctx, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, page.NumberOfElements)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, int64(12), page.TotalElements)
	})

	t.Run("size is capped", func(t *testing.T) {
		useCase, _, cities := newUseCase()
		cities.On("FindAll", mock.Anything, 1, 100).Return(nil, nil)
		cities.On("CountAll", mock.Anything).Return(int64(0), nil)

		page, err := useCase.FindAllCities(ctx, 1, 500)

		require.NoError(t, err)
		assert.Equal(t, 100, page.Size)
		assert.NotNil(t, page.Content)
	})

	t.Run("negative page", func(t *testing.T) {
		useCase, _, _ := newUseCase()

		_, err := useCase.FindAllCities(ctx, -1, 10)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("page too far for the offset", func(t *testing.T) {
		useCase, _, cities := newUseCase()

		_, err := useCase.FindAllCities(ctx, math.MaxInt, 10)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		cities.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("count error", func(t *testing.T) {
		useCase, _, cities := newUseCase()
		cities.On("FindAll", mock.Anything, 0, 10).Return([]entity.City{}, nil)
		cities.On("CountAll", mock.Anything).Return(int64(0), errors.New("timeout"))

		_, err := useCase.FindAllCities(ctx, 0, 10)

		assert.ErrorContains(t, err, "failed to count cities")
	})
}
