package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"weather-dashboard/internal/infra/aws"
	"weather-dashboard/internal/infra/database/sqlc"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

type ServerConfig struct {
	Port            string
	ContextPath     string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	Database  int
	KeyPrefix string
}

type ProviderConfig struct {
	URL        string
	Timeout    time.Duration
	MaxRetries int
}

type SyncConfig struct {
	Enabled   bool
	Cron      string
	LockTTL   time.Duration
	QueueName string
	BatchSize int
	Workers   int
}

// Config is the typed view of application.yml
type Config struct {
	ApplicationName string
	LogLevel        string
	Server          ServerConfig
	DB              sqlc.Config
	Migrate         bool
	Redis           RedisConfig
	Weather         ProviderConfig
	EnrichmentTTL   time.Duration
	Sync            SyncConfig
	Geocoding       ProviderConfig
	Cloud           aws.Config
}

// Load reads the properties and message files and builds the typed configuration
func Load() (*Config, error) {
	if err := resource.Load(); err != nil {
		return nil, err
	}
	if err := msg.Load(); err != nil {
		return nil, err
	}

	env := viper.New()
	env.AutomaticEnv()

	return &Config{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "weather-dashboard"),
		LogLevel:        resource.GetString("app.log.level"),
		Server: ServerConfig{
			Port:            resource.GetString("app.server.port"),
			ContextPath:     strings.TrimRight(resource.GetString("app.server.context-path"), "/"),
			CORSOrigins:     splitList(resource.GetString("app.server.cors-origins")),
			ShutdownTimeout: resource.GetDuration("app.server.shutdown-timeout"),
		},
		DB: sqlc.Config{
			Host:            resource.GetString("app.db.host"),
			Port:            resource.GetString("app.db.port"),
			Username:        resource.GetString("app.db.username"),
			Password:        resource.GetString("app.db.password"),
			Database:        resource.GetString("app.db.database"),
			Schema:          resource.GetString("app.db.schema"),
			SSLMode:         resource.GetString("app.db.ssl-mode"),
			MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
			MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
			ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
		},
		Migrate: resource.GetBool("app.db.migrate"),
		Redis: RedisConfig{
			Host:      resource.GetString("app.redis.host"),
			Port:      resource.GetInt("app.redis.port"),
			Password:  resource.GetString("app.redis.password"),
			Database:  resource.GetInt("app.redis.db"),
			KeyPrefix: resource.GetString("app.redis.key-prefix"),
		},
		Weather: ProviderConfig{
			URL:        resource.GetString("app.weather.api.url"),
			Timeout:    resource.GetDuration("app.weather.api.timeout"),
			MaxRetries: resource.GetInt("app.weather.api.max-retries"),
		},
		EnrichmentTTL: resource.GetDuration("app.weather.enrichment.cache-ttl"),
		Sync: SyncConfig{
			Enabled:   resource.GetBool("app.weather.sync.enabled"),
			Cron:      resource.GetString("app.weather.sync.cron"),
			LockTTL:   resource.GetDuration("app.weather.sync.lock-ttl"),
			QueueName: resource.GetString("app.weather.sync.queue-name"),
			BatchSize: resource.GetInt("app.weather.sync.batch-size"),
			Workers:   resource.GetInt("app.weather.sync.workers"),
		},
		Geocoding: ProviderConfig{
			URL:     resource.GetString("app.geocoding.api.url"),
			Timeout: resource.GetDuration("app.geocoding.api.timeout"),
		},
		Cloud: aws.Config{
			Region:          resource.GetString("app.cloud.aws-region"),
			Endpoint:        resource.GetString("app.cloud.aws-endpoint"),
			AccessKeyID:     resource.GetString("app.cloud.aws-access-key-id"),
			SecretAccessKey: resource.GetString("app.cloud.aws-secret-access-key"),
		},
	}, nil
}

// Address is the listen address of the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
