package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/conditions"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/cache"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/hourly"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type weatherUseCase struct {
	queueName    string
	batchSize    int
	apiGateway   api.WeatherGateway
	cacheGateway cache.ForecastCacheGateway
	dbGateway    db.CityGateway
	queueSender  queue.Sender
	now          func() time.Time
}

func NewWeatherUseCase(queueName string, batchSize int, queueSender queue.Sender, apiGateway api.WeatherGateway, cacheGateway cache.ForecastCacheGateway, dbGateway db.CityGateway) UseCase {
	if batchSize <= 0 {
		batchSize = 100
	}

	return &weatherUseCase{
		queueName:    queueName,
		batchSize:    batchSize,
		queueSender:  queueSender,
		apiGateway:   apiGateway,
		cacheGateway: cacheGateway,
		dbGateway:    dbGateway,
		now:          time.Now,
	}
}

// ReadCurrentWeather returns the cached reading plus best effort enrichment
func (uc *weatherUseCase) ReadCurrentWeather(ctx context.Context, cityName string) (*model.CurrentWeatherResponse, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return nil, fmt.Errorf("%w: city is required", model.ErrInvalidInput)
	}

	city, err := uc.dbGateway.FindByName(ctx, cityName)
	if err != nil {
		return nil, fmt.Errorf("failed to find city %s: %w", cityName, err)
	}
	if city == nil {
		return nil, fmt.Errorf("%w: city %s", model.ErrNotFound, cityName)
	}

	now := uc.now()
	response := &model.CurrentWeatherResponse{
		City:        city.Name,
		Country:     city.Country,
		Temperature: city.Temperature,
		WeatherCode: city.WeatherCode,
		LastUpdated: city.LastUpdated,
		Timezone:    "UTC",
		HourlyData:  []entity.HourlyPoint{},
	}

	if city.WeatherCode != nil {
		condition := conditions.Classify(*city.WeatherCode)
		response.Condition = &condition
	}
	if city.LastUpdated != nil {
		ago := conditions.TimeAgo(*city.LastUpdated, now)
		response.LastUpdatedAgo = &ago
	}

	loc := time.UTC
	if city.HasCoordinates() {
		forecast, err := uc.loadForecast(ctx, *city.Latitude, *city.Longitude)
		if err != nil {
			log.Warn(msg.GetMessage("weather.read.enrichment-failed", city.Name, err),
				zap.String("city", city.Name),
				zap.Error(err))
		} else {
			loc = uc.enrich(response, city.Name, forecast, now)
		}
	}
	response.IsDay = conditions.IsDaytime(now, loc)

	return response, nil
}

// loadForecast serves the forecast from cache when possible. Cache faults only cost a provider call.
func (uc *weatherUseCase) loadForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	if uc.cacheGateway != nil {
		cached, err := uc.cacheGateway.Get(ctx, latitude, longitude)
		if err != nil {
			log.Warnf("forecast cache read failed for %v,%v: %v", latitude, longitude, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	forecast, err := uc.apiGateway.GetForecast(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	if uc.cacheGateway != nil {
		if err := uc.cacheGateway.Set(ctx, latitude, longitude, forecast); err != nil {
			log.Warnf("forecast cache write failed for %v,%v: %v", latitude, longitude, err)
		}
	}

	return forecast, nil
}

// enrich copies wind speed and the hourly window onto response and returns the location of the series.
// Each part degrades on its own: a broken hourly section still leaves the wind speed.
func (uc *weatherUseCase) enrich(response *model.CurrentWeatherResponse, cityName string, forecast *external.ForecastResponse, now time.Time) *time.Location {
	if forecast.CurrentWeather != nil {
		response.WindSpeed = forecast.CurrentWeather.WindSpeed
	}

	loc := time.UTC
	if forecast.Timezone != "" {
		response.Timezone = forecast.Timezone
		loc = hourly.Location(forecast.Timezone, forecast.UTCOffsetSeconds)
	}

	times, temps, err := hourly.ParseSeries(forecast.Hourly, forecast.Timezone, forecast.UTCOffsetSeconds)
	if err != nil {
		log.Warn(msg.GetMessage("weather.read.enrichment-failed", cityName, err),
			zap.String("city", cityName),
			zap.Error(err))
		return loc
	}

	response.HourlyData = hourly.SelectWindow(times, temps, now)
	return loc
}

// SyncCurrentWeather writes temperature, weather code and timestamp of the city in one statement.
// Nothing is written when the provider fails.
func (uc *weatherUseCase) SyncCurrentWeather(ctx context.Context, request model.SyncWeatherDTO) (*model.SyncWeatherResponse, error) {
	cityName := strings.TrimSpace(request.City)
	if cityName == "" {
		return nil, fmt.Errorf("%w: city is required", model.ErrInvalidInput)
	}
	if request.Latitude == nil || request.Longitude == nil {
		return nil, fmt.Errorf("%w: latitude and longitude are required", model.ErrInvalidInput)
	}
	if *request.Latitude < -90 || *request.Latitude > 90 {
		return nil, fmt.Errorf("%w: latitude must be between -90 and 90", model.ErrInvalidInput)
	}
	if *request.Longitude < -180 || *request.Longitude > 180 {
		return nil, fmt.Errorf("%w: longitude must be between -180 and 180", model.ErrInvalidInput)
	}

	forecast, err := uc.apiGateway.GetCurrentWeather(ctx, *request.Latitude, *request.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather for %s: %w", cityName, err)
	}

	temperature := *forecast.CurrentWeather.Temperature
	weatherCode := *forecast.CurrentWeather.WeatherCode

	found, err := uc.dbGateway.UpdateCurrentWeather(ctx, cityName, temperature, weatherCode, uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: city %s", model.ErrNotFound, cityName)
	}

	log.Info(msg.GetMessage("weather.sync.done", cityName, temperature, weatherCode),
		zap.String("city", cityName),
		zap.Float64("temperature", temperature),
		zap.Int("weather_code", weatherCode))

	return &model.SyncWeatherResponse{
		Temperature: temperature,
		WeatherCode: weatherCode,
	}, nil
}

// SyncCity syncs a stored city with its stored coordinates
func (uc *weatherUseCase) SyncCity(ctx context.Context, city entity.City) error {
	if !city.HasCoordinates() {
		log.Warn(msg.GetMessage("weather.sync.skip-no-coordinates", city.Name), zap.String("city", city.Name))
		return nil
	}

	_, err := uc.SyncCurrentWeather(ctx, model.SyncWeatherDTO{
		City:      city.Name,
		Latitude:  city.Latitude,
		Longitude: city.Longitude,
	})
	if err != nil {
		log.Error(msg.GetMessage("weather.sync.failed", city.Name, err), zap.String("city", city.Name), zap.Error(err))
		// the city may have been renamed or be unknown to the provider, a redelivery would not help
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			return nil
		}
		return err
	}

	return nil
}

// EnqueueAllCities walks the cities with key-set pagination and sends one batch per page
func (uc *weatherUseCase) EnqueueAllCities(ctx context.Context, requestID string) (int, error) {
	var lastID string
	totalEnqueued := 0
	totalFailed := 0

	for {
		cities, err := uc.dbGateway.FindAllWithKeysetPagination(ctx, lastID, uc.batchSize)
		if err != nil {
			return totalEnqueued, fmt.Errorf("failed to fetch cities with key-set pagination (lastID: %s): %w", lastID, err)
		}
		if len(cities) == 0 {
			break
		}
		lastID = cities[len(cities)-1].ID

		messages := make([]queue.BatchMessage, 0, len(cities))
		for _, city := range cities {
			if !city.HasCoordinates() {
				log.Debug(msg.GetMessage("weather.sync.skip-no-coordinates", city.Name),
					zap.String("request_id", requestID))
				continue
			}
			messages = append(messages, queue.BatchMessage{
				MessageID: batchMessageID(requestID, city.ID),
				Body:      city,
			})
		}
		if len(messages) == 0 {
			continue
		}

		result, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
		if err != nil {
			log.Warn("Failed to send batch",
				zap.String("request_id", requestID),
				zap.String("last_id", lastID),
				zap.Error(err))
			totalFailed += len(messages)
			continue
		}

		for _, failedID := range result.Failed {
			log.Warn("Failed to enqueue city",
				zap.String("request_id", requestID),
				zap.String("message_id", failedID))
		}
		totalEnqueued += len(result.Successful)
		totalFailed += len(result.Failed)
	}

	log.Info("Completed city sync enqueue",
		zap.String("request_id", requestID),
		zap.Int("total_enqueued", totalEnqueued),
		zap.Int("total_failed", totalFailed))

	return totalEnqueued, nil
}

// batchMessageID must be unique within a batch and at most 80 characters
func batchMessageID(requestID string, cityID string) string {
	id := "sync-" + requestID + "-" + cityID
	if len(id) > 80 {
		id = id[len(id)-80:]
	}
	return id
}
