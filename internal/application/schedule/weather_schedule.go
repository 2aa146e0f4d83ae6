package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
)

const scheduleLockKey = "weather_sync_schedule"

// WeatherSchedulerConfig holds configuration for the weather scheduler
type WeatherSchedulerConfig struct {
	CronExpression string
	// LockTTL should be shorter than the cron interval. The lock is left to expire after a run
	// so instances ticking a little later skip the same round.
	LockTTL time.Duration
}

// WeatherScheduler periodically enqueues every city for a weather sync. A Redis lock makes sure only
// one instance enqueues per tick.
type WeatherScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      WeatherSchedulerConfig
}

// NewWeatherScheduler creates a new weather scheduler with distributed locking support
func NewWeatherScheduler(useCase weather.UseCase, redisClient *redis.Client, config WeatherSchedulerConfig) *WeatherScheduler {
	if config.CronExpression == "" {
		config.CronExpression = "@every 10m"
	}
	if config.LockTTL <= 0 {
		config.LockTTL = 5 * time.Minute
	}

	return &WeatherScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// Start registers the sync task and starts the cron. The cron stops when ctx is done.
func (s *WeatherScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() {
		s.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", s.config.CronExpression, err)
	}

	s.cron.Start()
	log.Infof("Weather sync scheduler started with cron expression: %s", s.config.CronExpression)

	go func() {
		<-ctx.Done()
		s.Stop()
		log.Info("Weather sync scheduler stopped")
	}()

	return nil
}

// ExecuteScheduledTask enqueues all cities when this instance wins the lock
func (s *WeatherScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.NewString()

	lock := redis.NewLock(s.redisClient, scheduleLockKey, redis.NewLockOptions().WithTTL(s.config.LockTTL))
	acquired, err := lock.TryLock(ctx)
	if err != nil {
		log.Error(msg.GetMessage("weather.schedule.failed", requestID, err), zap.String("request_id", requestID), zap.Error(err))
		return
	}
	if !acquired {
		log.Info(msg.GetMessage("weather.schedule.locked", requestID), zap.String("request_id", requestID))
		return
	}

	log.Info(msg.GetMessage("weather.schedule.start", requestID), zap.String("request_id", requestID))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	refreshErr := lock.AutoRefresh(runCtx)

	enqueued, err := s.useCase.EnqueueAllCities(runCtx, requestID)
	cancel()
	if refreshFailure := <-refreshErr; refreshFailure != nil && !errors.Is(refreshFailure, context.Canceled) {
		log.Warn("Weather sync lock refresh failed", zap.String("request_id", requestID), zap.Error(refreshFailure))
	}

	if err != nil {
		log.Error(msg.GetMessage("weather.schedule.failed", requestID, err), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("weather.schedule.end", requestID, enqueued),
		zap.String("request_id", requestID),
		zap.Int("enqueued", enqueued))
}

// Stop gracefully stops the scheduler and waits for a running task
func (s *WeatherScheduler) Stop() {
	<-s.cron.Stop().Done()
}
