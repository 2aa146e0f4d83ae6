package cache

import (
	"context"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

type HealthCacheGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// RedisHealthGateway reports the state of the Redis connection
type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthCacheGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.client.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
