package redis

import (
	"fmt"
	"time"
)

// Config represents Redis configuration options
type Config struct {
	// Host is the Redis server host
	Host string
	// Port is the Redis server port
	Port int
	// Password is the Redis server password
	Password string
	// Database is the Redis database number
	Database int
	// KeyPrefix namespaces every cache and lock key of the application
	KeyPrefix string
	// MinIdleConns is the minimum number of idle connections
	MinIdleConns int
	// MaxActive is the maximum number of active connections that can be established
	MaxActive int
	// MaxRetries is the maximum number of retries for failed commands
	MaxRetries int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// DefaultCacheTTL is used by caches created without a TTL
	DefaultCacheTTL time.Duration
}

// NewRedisConfig creates a new Redis configuration with default values
func NewRedisConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		MinIdleConns:    2,
		MaxActive:       20,
		MaxRetries:      3,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		DefaultCacheTTL: 5 * time.Minute,
	}
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

func (c *Config) WithKeyPrefix(prefix string) *Config {
	c.KeyPrefix = prefix
	return c
}

func (c *Config) WithDefaultCacheTTL(ttl time.Duration) *Config {
	c.DefaultCacheTTL = ttl
	return c
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1 and 65535", c.Port)
	}
	if c.Database < 0 || c.Database > 15 {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}
	if c.MinIdleConns < 0 || c.MaxActive < 0 || c.MaxRetries < 0 {
		return fmt.Errorf("pool sizes and retries must be non-negative")
	}
	if c.DefaultCacheTTL < 0 {
		return fmt.Errorf("invalid default cache TTL: %v, must be non-negative", c.DefaultCacheTTL)
	}
	return nil
}
