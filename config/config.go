package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "VV"

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"

	minScopeSecretLen = 32
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Redis   RedisConfig
	DB      DBConfig
	Scope   ScopeConfig
	Session SessionConfig
	Metrics MetricsConfig
	Limits  LimitsConfig
}

type AppConfig struct {
	Port     string `envconfig:"VV_PORT" default:"8080"`
	LogLevel string `envconfig:"VV_LOG_LEVEL" default:"info"`
}

type StoreConfig struct {
	Driver string `envconfig:"VV_STORE_DRIVER" default:"memory"`
}

type RedisConfig struct {
	URL      string `envconfig:"VV_REDIS_URL"`
	Address  string `envconfig:"VV_REDIS_ADDR"`
	Password string `envconfig:"VV_REDIS_PASSWORD"`
	DB       int    `envconfig:"VV_REDIS_DB" default:"0"`
}

type DBConfig struct {
	DSN             string        `envconfig:"VV_DB_DSN"`
	MaxOpenConns    int           `envconfig:"VV_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"VV_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"VV_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type ScopeConfig struct {
	Secret string        `envconfig:"VV_SCOPE_SECRET"`
	TTL    time.Duration `envconfig:"VV_SCOPE_TTL" default:"720h"`
}

type SessionConfig struct {
	AdminEmail string `envconfig:"VV_ADMIN_EMAIL" default:"admin@velvetvogue.com"`
	LoginPath  string `envconfig:"VV_LOGIN_PATH" default:"/session"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"VV_METRICS_ENABLED" default:"false"`
	Token   string `envconfig:"VV_METRICS_TOKEN"`
}

type LimitsConfig struct {
	LoginPerMin    int `envconfig:"VV_LOGIN_LIMIT_PER_MIN" default:"5"`
	RegisterPerMin int `envconfig:"VV_REGISTER_LIMIT_PER_MIN" default:"3"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	switch c.Store.Driver {
	case DriverMemory:
	case DriverRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return errors.New("VV_REDIS_URL or VV_REDIS_ADDR is required for the redis driver")
		}
	case DriverPostgres:
		if c.DB.DSN == "" {
			return errors.New("VV_DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown VV_STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Store.Driver != DriverMemory && len(c.Scope.Secret) < minScopeSecretLen {
		return fmt.Errorf("VV_SCOPE_SECRET must be at least %d chars", minScopeSecretLen)
	}
	if c.Metrics.Enabled && c.Metrics.Token == "" {
		return errors.New("VV_METRICS_TOKEN is required when metrics are enabled")
	}
	return nil
}
