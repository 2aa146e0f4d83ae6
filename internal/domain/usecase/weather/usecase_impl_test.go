package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/conditions"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/internal/testutils"
)

var fixedNow = time.Date(2024, 6, 2, 18, 30, 0, 0, time.UTC)

type fixture struct {
	api     *testutils.MockWeatherGateway
	cache   *testutils.MockForecastCache
	db      *testutils.MockCityGateway
	sender  *testutils.MockSender
	useCase *weatherUseCase
}

func newFixture() *fixture {
	f := &fixture{
		api:    new(testutils.MockWeatherGateway),
		cache:  new(testutils.MockForecastCache),
		db:     new(testutils.MockCityGateway),
		sender: new(testutils.MockSender),
	}
	f.useCase = NewWeatherUseCase("weather-sync", 2, f.sender, f.api, f.cache, f.db).(*weatherUseCase)
	f.useCase.now = func() time.Time { return fixedNow }
	return f
}

func syncedCity() *entity.City {
	synced := fixedNow.Add(-5 * time.Minute)
	return &entity.City{
		ID:          "c1",
		Name:        "Toronto",
		Country:     "Canada",
		Latitude:    testutils.Float(43.7),
		Longitude:   testutils.Float(-79.4),
		Temperature: testutils.Float(21.5),
		WeatherCode: testutils.Int(61),
		LastUpdated: &synced,
	}
}

// torontoForecast has 48 hourly points starting 2024-06-01T00:00 local time (UTC-4).
func torontoForecast() *external.ForecastResponse {
	series := &external.HourlySeries{}
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		series.Time = append(series.Time, start.Add(time.Duration(i)*time.Hour).Format(external.HourlyTimeLayout))
		series.Temperature2m = append(series.Temperature2m, testutils.Float(float64(i)))
	}
	return &external.ForecastResponse{
		Timezone:         "America/Toronto",
		UTCOffsetSeconds: -4 * 3600,
		CurrentWeather: &external.CurrentWeather{
			Temperature: testutils.Float(22),
			WindSpeed:   testutils.Float(14.3),
			WeatherCode: testutils.Int(2),
		},
		Hourly: series,
	}
}

func TestReadCurrentWeather_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.ReadCurrentWeather(context.Background(), "   ")

	assert.ErrorIs(t, err, model.ErrInvalidInput)
	f.db.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestReadCurrentWeather_NotFound(t *testing.T) {
	f := newFixture()
	f.db.On("FindByName", mock.Anything, "Atlantis").Return(nil, nil)

	_, err := f.useCase.ReadCurrentWeather(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReadCurrentWeather_Enriched(t *testing.T) {
	f := newFixture()
	forecast := torontoForecast()
	f.db.On("FindByName", mock.Anything, "Toronto").Return(syncedCity(), nil)
	f.cache.On("Get", mock.Anything, 43.7, -79.4).Return(nil, nil)
	f.api.On("GetForecast", mock.Anything, 43.7, -79.4).Return(forecast, nil)
	f.cache.On("Set", mock.Anything, 43.7, -79.4, forecast).Return(nil)

	response, err := f.useCase.ReadCurrentWeather(context.Background(), " Toronto ")

	require.NoError(t, err)
	assert.Equal(t, 21.5, *response.Temperature)
	assert.Equal(t, 61, *response.WeatherCode)
	assert.Equal(t, conditions.Rainy, *response.Condition)
	assert.Equal(t, "5 minutes ago", *response.LastUpdatedAgo)
	assert.Equal(t, 14.3, *response.WindSpeed)
	assert.Equal(t, "America/Toronto", response.Timezone)
	assert.True(t, response.IsDay)

	// 18:30 UTC is 14:30 in Toronto, the anchor is 2024-06-02T14:00 local at index 38
	require.Len(t, response.HourlyData, 13)
	first := response.HourlyData[0]
	assert.True(t, first.Time.Equal(time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)), "got %s", first.Time)
	assert.Equal(t, 32.0, *first.Temp)
	assert.Equal(t, 38.0, *response.HourlyData[6].Temp)
	assert.Equal(t, 44.0, *response.HourlyData[12].Temp)

	f.api.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestReadCurrentWeather_CacheHit(t *testing.T) {
	f := newFixture()
	f.db.On("FindByName", mock.Anything, "Toronto").Return(syncedCity(), nil)
	f.cache.On("Get", mock.Anything, 43.7, -79.4).Return(torontoForecast(), nil)

	response, err := f.useCase.ReadCurrentWeather(context.Background(), "Toronto")

	require.NoError(t, err)
	assert.Len(t, response.HourlyData, 13)
	f.api.AssertNotCalled(t, "GetForecast", mock.Anything, mock.Anything, mock.Anything)
}

func TestReadCurrentWeather_EnrichmentFailureServesCachedReading(t *testing.T) {
	f := newFixture()
	f.db.On("FindByName", mock.Anything, "Toronto").Return(syncedCity(), nil)
	f.cache.On("Get", mock.Anything, 43.7, -79.4).Return(nil, errors.New("redis down"))
	f.api.On("GetForecast", mock.Anything, 43.7, -79.4).
		Return(nil, fmt.Errorf("%w: context deadline exceeded", model.ErrUpstreamUnavailable))

	response, err := f.useCase.ReadCurrentWeather(context.Background(), "Toronto")

	require.NoError(t, err)
	assert.Equal(t, 21.5, *response.Temperature)
	assert.Equal(t, 61, *response.WeatherCode)
	assert.NotNil(t, response.LastUpdated)
	assert.Nil(t, response.WindSpeed)
	assert.NotNil(t, response.HourlyData)
	assert.Empty(t, response.HourlyData)
	assert.Equal(t, "UTC", response.Timezone)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadCurrentWeather_MissingHourlyKeepsWindSpeed(t *testing.T) {
	f := newFixture()
	forecast := torontoForecast()
	forecast.Hourly = nil
	f.db.On("FindByName", mock.Anything, "Toronto").Return(syncedCity(), nil)
	f.cache.On("Get", mock.Anything, 43.7, -79.4).Return(forecast, nil)

	response, err := f.useCase.ReadCurrentWeather(context.Background(), "Toronto")

	require.NoError(t, err)
	assert.Equal(t, 14.3, *response.WindSpeed)
	assert.Empty(t, response.HourlyData)
}

func TestReadCurrentWeather_NeverSyncedWithoutCoordinates(t *testing.T) {
	f := newFixture()
	f.db.On("FindByName", mock.Anything, "Nowhere").Return(&entity.City{ID: "c9", Name: "Nowhere", Country: "Unknown"}, nil)

	response, err := f.useCase.ReadCurrentWeather(context.Background(), "Nowhere")

	require.NoError(t, err)
	assert.Nil(t, response.Temperature)
	assert.Nil(t, response.Condition)
	assert.Nil(t, response.LastUpdatedAgo)
	assert.Empty(t, response.HourlyData)
	assert.True(t, response.IsDay)
	f.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncCurrentWeather_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request model.SyncWeatherDTO
	}{
		{name: "empty city", request: model.SyncWeatherDTO{City: " ", Latitude: testutils.Float(1), Longitude: testutils.Float(1)}},
		{name: "missing latitude", request: model.SyncWeatherDTO{City: "Toronto", Longitude: testutils.Float(1)}},
		{name: "latitude out of range", request: model.SyncWeatherDTO{City: "Toronto", Latitude: testutils.Float(90.1), Longitude: testutils.Float(1)}},
		{name: "longitude out of range", request: model.SyncWeatherDTO{City: "Toronto", Latitude: testutils.Float(1), Longitude: testutils.Float(-180.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.useCase.SyncCurrentWeather(context.Background(), tt.request)

			assert.ErrorIs(t, err, model.ErrInvalidInput)
			f.api.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSyncCurrentWeather_Success(t *testing.T) {
	f := newFixture()
	f.api.On("GetCurrentWeather", mock.Anything, 43.7, -79.4).Return(torontoForecast(), nil)
	f.db.On("UpdateCurrentWeather", mock.Anything, "Toronto", 22.0, 2, fixedNow).Return(true, nil)

	response, err := f.useCase.SyncCurrentWeather(context.Background(), model.SyncWeatherDTO{
		City:      "Toronto",
		Latitude:  testutils.Float(43.7),
		Longitude: testutils.Float(-79.4),
	})

	require.NoError(t, err)
	assert.Equal(t, &model.SyncWeatherResponse{Temperature: 22, WeatherCode: 2}, response)
	f.db.AssertExpectations(t)
}

func TestSyncCurrentWeather_ProviderUnavailableWritesNothing(t *testing.T) {
	f := newFixture()
	f.api.On("GetCurrentWeather", mock.Anything, 43.7, -79.4).
		Return(nil, fmt.Errorf("%w: http error: status 503", model.ErrUpstreamUnavailable))

	_, err := f.useCase.SyncCurrentWeather(context.Background(), model.SyncWeatherDTO{
		City:      "Toronto",
		Latitude:  testutils.Float(43.7),
		Longitude: testutils.Float(-79.4),
	})

	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
	f.db.AssertNotCalled(t, "UpdateCurrentWeather", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncCurrentWeather_UnknownCity(t *testing.T) {
	f := newFixture()
	f.api.On("GetCurrentWeather", mock.Anything, 1.0, 2.0).Return(torontoForecast(), nil)
	f.db.On("UpdateCurrentWeather", mock.Anything, "Atlantis", 22.0, 2, fixedNow).Return(false, nil)

	_, err := f.useCase.SyncCurrentWeather(context.Background(), model.SyncWeatherDTO{
		City:      "Atlantis",
		Latitude:  testutils.Float(1),
		Longitude: testutils.Float(2),
	})

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSyncCity(t *testing.T) {
	ctx := context.Background()

	t.Run("skips cities without coordinates", func(t *testing.T) {
		f := newFixture()

		err := f.useCase.SyncCity(ctx, entity.City{Name: "Nowhere"})

		assert.NoError(t, err)
		f.api.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("drops renamed cities", func(t *testing.T) {
		f := newFixture()
		f.api.On("GetCurrentWeather", mock.Anything, 43.7, -79.4).Return(torontoForecast(), nil)
		f.db.On("UpdateCurrentWeather", mock.Anything, "Toronto", 22.0, 2, fixedNow).Return(false, nil)

		assert.NoError(t, f.useCase.SyncCity(ctx, *syncedCity()))
	})

	t.Run("returns provider failures for redelivery", func(t *testing.T) {
		f := newFixture()
		f.api.On("GetCurrentWeather", mock.Anything, 43.7, -79.4).Return(nil, model.ErrUpstreamUnavailable)

		assert.ErrorIs(t, f.useCase.SyncCity(ctx, *syncedCity()), model.ErrUpstreamUnavailable)
	})
}

func TestEnqueueAllCities(t *testing.T) {
	ctx := context.Background()
	toronto := *syncedCity()
	nowhere := entity.City{ID: "c2", Name: "Nowhere"}
	london := entity.City{ID: "c3", Name: "London", Latitude: testutils.Float(51.5), Longitude: testutils.Float(-0.12)}

	t.Run("pages through cities and skips the ones without coordinates", func(t *testing.T) {
		f := newFixture()
		f.db.On("FindAllWithKeysetPagination", mock.Anything, "", 2).Return([]entity.City{toronto, nowhere}, nil)
		f.db.On("FindAllWithKeysetPagination", mock.Anything, "c2", 2).Return([]entity.City{london}, nil)
		f.db.On("FindAllWithKeysetPagination", mock.Anything, "c3", 2).Return([]entity.City{}, nil)
		f.sender.On("SendMessageBatch", mock.Anything, "weather-sync", []queue.BatchMessage{
			{MessageID: "sync-r1-c1", Body: toronto},
		}).Return(&queue.BatchResult{Successful: []string{"sync-r1-c1"}}, nil)
		f.sender.On("SendMessageBatch", mock.Anything, "weather-sync", []queue.BatchMessage{
			{MessageID: "sync-r1-c3", Body: london},
		}).Return(&queue.BatchResult{Failed: []string{"sync-r1-c3"}}, nil)

		enqueued, err := f.useCase.EnqueueAllCities(ctx, "r1")

		require.NoError(t, err)
		assert.Equal(t, 1, enqueued)
		f.sender.AssertExpectations(t)
	})

	t.Run("a failed batch does not stop paging", func(t *testing.T) {
		f := newFixture()
		f.db.On("FindAllWithKeysetPagination", mock.Anything, "", 2).Return([]entity.City{toronto}, nil)
		f.db.On("FindAllWithKeysetPagination", mock.Anything, "c1", 2).Return([]entity.City{}, nil)
		f.sender.On("SendMessageBatch", mock.Anything, "weather-sync", mock.Anything).Return(nil, errors.New("throttled"))

		enqueued, err := f.useCase.EnqueueAllCities(ctx, "r2")

		require.NoError(t, err)
		assert.Zero(t, enqueued)
		f.db.AssertExpectations(t)
	})

	t.Run("database error aborts", func(t *testing.T) {
		f := newFixture()
		f.db.On("FindAllWithKeysetPagination", mock.Anything, "", 2).Return(nil, errors.New("connection refused"))

		_, err := f.useCase.EnqueueAllCities(ctx, "r3")

		assert.ErrorContains(t, err, "connection refused")
	})
}
