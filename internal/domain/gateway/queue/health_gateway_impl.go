package queue

import (
	"strconv"
	"sync"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/sqs"
)

type QueueHealthGateway struct {
	workers map[string]Worker
	mutex   sync.RWMutex
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{
		workers: make(map[string]Worker),
	}
}

func (gateway *QueueHealthGateway) RegisterWorker(name string, worker Worker) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.workers[name] = worker
}

func (gateway *QueueHealthGateway) UnregisterWorker(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.workers, name)
}

// Health is UNKNOWN without workers and DOWN as soon as one worker is down.
func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.workers) == 0 {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message":       "No workers registered",
				"workers_total": "0",
			},
		}
	}

	overallStatus := model.StatusUp
	details := make(map[string]string)
	workersUp := 0

	for name, worker := range gateway.workers {
		workerHealth := worker.HealthCheck()

		if workerHealth.Status == sqs.StatusUp {
			workersUp++
		} else {
			overallStatus = model.StatusDown
		}
		details[name+"_status"] = string(workerHealth.Status)

		for key, value := range workerHealth.Details {
			details[name+"_"+key] = value
		}
	}

	details["workers_total"] = strconv.Itoa(len(gateway.workers))
	details["workers_up"] = strconv.Itoa(workersUp)
	details["workers_down"] = strconv.Itoa(len(gateway.workers) - workersUp)

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
