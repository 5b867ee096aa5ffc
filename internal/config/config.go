package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/clinicore/admin-api/internal/store/postgres"
)

// Driver names accepted by StoreConfig.Driver.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Store      StoreConfig      `mapstructure:"store"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Seed       SeedConfig       `mapstructure:"seed"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// StoreConfig selects the persistence backend. The dashboard
// historically mixed a browser-local store and a relational database;
// here the same choice is one explicit switch.
type StoreConfig struct {
	Driver   string          `mapstructure:"driver"`
	Path     string          `mapstructure:"path"`
	Database postgres.Config `mapstructure:"database"`
}

type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Channel string `mapstructure:"channel"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type MonitoringConfig struct {
	MetricsPrefix string `mapstructure:"metrics_prefix"`
}

// LoadConfig reads config.yaml and overlays CLINIC_* environment
// variables on top.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("store.driver", DriverFile)
	viper.SetDefault("store.path", "./data")
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("monitoring.metrics_prefix", "clinic")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("clinic", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if config.Store.Driver != DriverFile && config.Store.Driver != DriverPostgres {
		return nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}

	return &config, nil
}
