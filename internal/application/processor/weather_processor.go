package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
)

// WeatherProcessor syncs the cities enqueued by the weather schedule
type WeatherProcessor struct {
	weatherUseCase weather.UseCase
}

func NewWeatherProcessor(weatherUseCase weather.UseCase) *WeatherProcessor {
	return &WeatherProcessor{
		weatherUseCase: weatherUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. A returned error leaves the message on the queue.
func (p *WeatherProcessor) HandleMessage(ctx context.Context, msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var city entity.City
	if err := json.Unmarshal([]byte(*msg.Body), &city); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}
	if city.Name == "" {
		return fmt.Errorf("message %s has no city name", messageID(msg))
	}

	log.Debug("Processing weather sync message", zap.String("message_id", messageID(msg)), zap.String("city", city.Name))

	if err := p.weatherUseCase.SyncCity(ctx, city); err != nil {
		return fmt.Errorf("failed to sync weather for %s: %w", city.Name, err)
	}

	return nil
}

func messageID(msg *types.Message) string {
	if msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
