package schedule

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/testutils"
	"weather-dashboard/pkg/redis"
)

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(mr.Host()).WithPort(port).WithKeyPrefix("weather"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestExecuteScheduledTask_OneRunPerLock(t *testing.T) {
	client, mr := newRedis(t)
	useCase := new(testutils.MockWeatherUseCase)
	useCase.On("EnqueueAllCities", mock.Anything, mock.AnythingOfType("string")).Return(2, nil)

	first := NewWeatherScheduler(useCase, client, WeatherSchedulerConfig{LockTTL: time.Minute})
	second := NewWeatherScheduler(useCase, client, WeatherSchedulerConfig{LockTTL: time.Minute})

	first.ExecuteScheduledTask(context.Background())
	second.ExecuteScheduledTask(context.Background())

	useCase.AssertNumberOfCalls(t, "EnqueueAllCities", 1)
	assert.True(t, mr.Exists("weather::lock::"+scheduleLockKey))

	mr.FastForward(2 * time.Minute)
	second.ExecuteScheduledTask(context.Background())

	useCase.AssertNumberOfCalls(t, "EnqueueAllCities", 2)
}

func TestExecuteScheduledTask_EnqueueFailure(t *testing.T) {
	client, _ := newRedis(t)
	useCase := new(testutils.MockWeatherUseCase)
	useCase.On("EnqueueAllCities", mock.Anything, mock.Anything).Return(0, errors.New("database down"))

	NewWeatherScheduler(useCase, client, WeatherSchedulerConfig{}).ExecuteScheduledTask(context.Background())

	useCase.AssertExpectations(t)
}

func TestExecuteScheduledTask_RedisDown(t *testing.T) {
	client, mr := newRedis(t)
	mr.Close()
	useCase := new(testutils.MockWeatherUseCase)

	NewWeatherScheduler(useCase, client, WeatherSchedulerConfig{}).ExecuteScheduledTask(context.Background())

	useCase.AssertNotCalled(t, "EnqueueAllCities", mock.Anything, mock.Anything)
}

func TestStart_InvalidCron(t *testing.T) {
	client, _ := newRedis(t)

	err := NewWeatherScheduler(new(testutils.MockWeatherUseCase), client, WeatherSchedulerConfig{CronExpression: "not a cron"}).
		Start(context.Background())

	assert.ErrorContains(t, err, "invalid cron expression")
}
