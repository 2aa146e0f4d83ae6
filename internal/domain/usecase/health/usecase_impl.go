package health

import (
	"context"
	"sync"

	"weather-dashboard/internal/domain/gateway/cache"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthCacheGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthCacheGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth probes the components concurrently. The queue may be UNKNOWN while no worker runs
// without taking the application down.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	var wg sync.WaitGroup
	var dbHealth, cacheHealth model.ComponentHealthStatus

	wg.Add(2)
	go func() {
		defer wg.Done()
		dbHealth = useCase.dbGateway.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}()
	queueHealth := useCase.queueGateway.Health()
	wg.Wait()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || cacheHealth.Status != model.StatusUp || queueHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}
