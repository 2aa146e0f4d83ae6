package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-dashboard/configs"
	"weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/processor"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/cache"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/usecase/city"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/internal/infra/aws"
	"weather-dashboard/internal/infra/database/gorm"
	"weather-dashboard/internal/infra/database/sqlc"
	httpclient "weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/sqs"
)

const syncWorkerName = "weather-sync"

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	pool, err := sqlc.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer closeQuietly("database", pool.Close)

	if cfg.Migrate {
		if err := gorm.Migrate(pool); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	redisClient, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(cfg.Redis.Host).
		WithPort(cfg.Redis.Port).
		WithPassword(cfg.Redis.Password).
		WithDatabase(cfg.Redis.Database).
		WithKeyPrefix(cfg.Redis.KeyPrefix).
		WithDefaultCacheTTL(cfg.EnrichmentTTL))
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer closeQuietly("redis", redisClient.Close)

	awsConfig, err := aws.NewConfig(ctx, cfg.Cloud)
	if err != nil {
		log.Fatalf("failed to load cloud configuration: %v", err)
	}
	sqsClient := aws.NewSqsClient(awsConfig, cfg.Cloud.Endpoint)

	// Init Gateways
	httpLogger := log.NewHTTPLogger()
	weatherGateway := api.NewWeatherGateway(cfg.Weather.URL, cfg.Weather.Timeout, httpclient.ClientOptions{
		ReadTimeout: cfg.Weather.Timeout,
		Logger:      httpLogger,
		Backoff: &httpclient.BackoffConfig{
			MaxRetries:      cfg.Weather.MaxRetries,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
		},
	}, api.BreakerSettings{})
	geocodingGateway := api.NewGeocodingGateway(cfg.Geocoding.URL, cfg.Geocoding.Timeout, httpclient.ClientOptions{
		ReadTimeout: cfg.Geocoding.Timeout,
		Logger:      httpLogger,
	}, api.BreakerSettings{})

	cityGateway := db.NewSQLCCityGateway(pool)
	dbHealthGateway := db.NewSQLCHealthDBGateway(pool)
	forecastCache := cache.NewRedisForecastGateway(redisClient, cfg.EnrichmentTTL)
	cacheHealthGateway := cache.NewRedisHealthGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)

	// Init UseCases
	weatherUseCase := weather.NewWeatherUseCase(cfg.Sync.QueueName, cfg.Sync.BatchSize, queueSender, weatherGateway, forecastCache, cityGateway)
	cityUseCase := city.NewCityUseCase(geocodingGateway, cityGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway, queueHealthGateway)

	// Init Controllers and Routes
	e := echo.New()
	e.HideBanner = true
	middleware.SetupCORS(e, cfg.Server.CORSOrigins)
	middleware.SetupRequestLogger(e)

	docs.SwaggerInfo.BasePath = cfg.Server.ContextPath
	group := e.Group(cfg.Server.ContextPath)
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
	controller.NewCityController(group, cityUseCase).InitCityRoutes()

	// Init Sync worker and Schedule
	if cfg.Sync.Enabled {
		worker, err := sqs.NewWorker(ctx, sqsClient, cfg.Sync.QueueName, processor.NewWeatherProcessor(weatherUseCase), &sqs.WorkerConfig{
			PoolSize: cfg.Sync.Workers,
		})
		if err != nil {
			log.Errorf("weather sync worker disabled: %v", err)
		} else {
			queueHealthGateway.RegisterWorker(syncWorkerName, worker)
			go worker.Start(ctx)
		}

		scheduler := schedule.NewWeatherScheduler(weatherUseCase, redisClient, schedule.WeatherSchedulerConfig{
			CronExpression: cfg.Sync.Cron,
			LockTTL:        cfg.Sync.LockTTL,
		})
		if err := scheduler.Start(ctx); err != nil {
			log.Fatalf("failed to start weather scheduler: %v", err)
		}
	}

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started", cfg.Server.Port))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down http server: %v", err)
	}
	queueHealthGateway.UnregisterWorker(syncWorkerName)
}

func closeQuietly(name string, closeFn func() error) {
	if err := closeFn(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		log.Warnf("failed to close %s: %v", name, err)
	}
}
