package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/testutils"
)

func component(status model.HealthStatus) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: status, Details: map[string]string{}}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name  string
		db    model.HealthStatus
		cache model.HealthStatus
		queue model.HealthStatus
		want  model.HealthStatus
	}{
		{name: "all up", db: model.StatusUp, cache: model.StatusUp, queue: model.StatusUp, want: model.StatusUp},
		{name: "no worker yet", db: model.StatusUp, cache: model.StatusUp, queue: model.StatusUnknown, want: model.StatusUp},
		{name: "database down", db: model.StatusDown, cache: model.StatusUp, queue: model.StatusUp, want: model.StatusDown},
		{name: "cache down", db: model.StatusUp, cache: model.StatusDown, queue: model.StatusUp, want: model.StatusDown},
		{name: "worker down", db: model.StatusUp, cache: model.StatusUp, queue: model.StatusDown, want: model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(testutils.MockComponentHealth)
			cache := new(testutils.MockComponentHealth)
			queue := new(testutils.MockQueueHealth)
			db.On("Health", mock.Anything).Return(component(tt.db))
			cache.On("Health", mock.Anything).Return(component(tt.cache))
			queue.On("Health").Return(component(tt.queue))

			response := NewHealthUseCase(db, cache, queue).CheckHealth(context.Background())

			assert.Equal(t, tt.want, response.Status)
			assert.Equal(t, tt.db, response.Database.Status)
			assert.Equal(t, tt.cache, response.Cache.Status)
			assert.Equal(t, tt.queue, response.Queue.Status)
		})
	}
}
