package db

import (
	"context"

	"weather-dashboard/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
