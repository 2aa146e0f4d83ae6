package testutils

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
)

type MockWeatherGateway struct {
	mock.Mock
}

func (m *MockWeatherGateway) GetCurrentWeather(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.ForecastResponse), args.Error(1)
}

func (m *MockWeatherGateway) GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.ForecastResponse), args.Error(1)
}

type MockGeocodingGateway struct {
	mock.Mock
}

func (m *MockGeocodingGateway) SearchCity(ctx context.Context, name string) (*external.GeocodingResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.GeocodingResult), args.Error(1)
}

type MockForecastCache struct {
	mock.Mock
}

func (m *MockForecastCache) Get(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.ForecastResponse), args.Error(1)
}

func (m *MockForecastCache) Set(ctx context.Context, latitude float64, longitude float64, forecast *external.ForecastResponse) error {
	args := m.Called(ctx, latitude, longitude, forecast)
	return args.Error(0)
}

type MockCityGateway struct {
	mock.Mock
}

func (m *MockCityGateway) FindAll(ctx context.Context, page int, size int) ([]entity.City, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.City), args.Error(1)
}

func (m *MockCityGateway) FindAllWithKeysetPagination(ctx context.Context, lastID string, size int) ([]entity.City, error) {
	args := m.Called(ctx, lastID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.City), args.Error(1)
}

func (m *MockCityGateway) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCityGateway) FindByName(ctx context.Context, name string) (*entity.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.City), args.Error(1)
}

func (m *MockCityGateway) Create(ctx context.Context, city entity.City) (*entity.City, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.City), args.Error(1)
}

func (m *MockCityGateway) UpdateLocation(ctx context.Context, id string, country string, latitude float64, longitude float64) (*entity.City, error) {
	args := m.Called(ctx, id, country, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.City), args.Error(1)
}

func (m *MockCityGateway) UpdateCurrentWeather(ctx context.Context, name string, temperature float64, weatherCode int, at time.Time) (bool, error) {
	args := m.Called(ctx, name, temperature, weatherCode, at)
	return args.Bool(0), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(ctx context.Context, queueName string, body any) error {
	args := m.Called(ctx, queueName, body)
	return args.Error(0)
}

func (m *MockSender) SendMessageBatch(ctx context.Context, queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	args := m.Called(ctx, queueName, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.BatchResult), args.Error(1)
}

type MockComponentHealth struct {
	mock.Mock
}

func (m *MockComponentHealth) Health(ctx context.Context) model.ComponentHealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(model.ComponentHealthStatus)
}

type MockQueueHealth struct {
	mock.Mock
}

func (m *MockQueueHealth) Health() model.ComponentHealthStatus {
	args := m.Called()
	return args.Get(0).(model.ComponentHealthStatus)
}

func (m *MockQueueHealth) RegisterWorker(name string, worker queue.Worker) {
	m.Called(name, worker)
}

func (m *MockQueueHealth) UnregisterWorker(name string) {
	m.Called(name)
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}

type MockWeatherUseCase struct {
	mock.Mock
}

func (m *MockWeatherUseCase) ReadCurrentWeather(ctx context.Context, city string) (*model.CurrentWeatherResponse, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CurrentWeatherResponse), args.Error(1)
}

func (m *MockWeatherUseCase) SyncCurrentWeather(ctx context.Context, request model.SyncWeatherDTO) (*model.SyncWeatherResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SyncWeatherResponse), args.Error(1)
}

func (m *MockWeatherUseCase) SyncCity(ctx context.Context, city entity.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockWeatherUseCase) EnqueueAllCities(ctx context.Context, requestID string) (int, error) {
	args := m.Called(ctx, requestID)
	return args.Int(0), args.Error(1)
}

type MockCityUseCase struct {
	mock.Mock
}

func (m *MockCityUseCase) RegisterCity(ctx context.Context, name string) (*model.RegisterCityResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RegisterCityResponse), args.Error(1)
}

func (m *MockCityUseCase) FindAllCities(ctx context.Context, page int, size int) (*model.Page[entity.City], error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[entity.City]), args.Error(1)
}

type MockHealthUseCase struct {
	mock.Mock
}

func (m *MockHealthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	args := m.Called(ctx)
	return args.Get(0).(model.HealthResponse)
}
