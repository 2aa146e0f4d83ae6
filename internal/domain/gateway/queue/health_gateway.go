package queue

import (
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/sqs"
)

// Worker is anything that reports the health of a queue consumer
type Worker interface {
	HealthCheck() sqs.WorkerHealth
}

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker Worker)
	UnregisterWorker(name string)
}
