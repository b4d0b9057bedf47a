package config

import (
	"fmt"
	"strings"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/billyribeiro-ux/fieldforge/internal/validator"
	"github.com/spf13/viper"
)

// Configuration is the top level application configuration loaded from
// config files and FIELDFORGE_* environment variables.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Postgres   PostgresConfig   `mapstructure:"postgres" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Effects    EffectsConfig    `mapstructure:"effects"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type PostgresConfig struct {
	Host                   string `mapstructure:"host" validate:"required"`
	Port                   int    `mapstructure:"port" validate:"required"`
	User                   string `mapstructure:"user" validate:"required"`
	Password               string `mapstructure:"password"`
	DBName                 string `mapstructure:"dbname" validate:"required"`
	SSLMode                string `mapstructure:"sslmode" validate:"required"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level"`
}

// EffectsConfig controls the side effect dispatcher. The memory backend
// runs effects in process over a gochannel bus; the kafka backend hands
// them to external workers.
type EffectsConfig struct {
	Backend    types.PubSubBackend `mapstructure:"backend"`
	Topic      string              `mapstructure:"topic"`
	MaxRetries int                 `mapstructure:"max_retries"`
}

type KafkaConfig struct {
	Brokers       []string `mapstructure:"brokers"`
	ConsumerGroup string   `mapstructure:"consumer_group"`
	ClientID      string   `mapstructure:"client_id"`
}

// GetDefaultConfig returns a sane local development configuration,
// used by tests and scripts that do not load config files.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Postgres: PostgresConfig{
			Host:                   "localhost",
			Port:                   5432,
			User:                   "fieldforge",
			Password:               "fieldforge",
			DBName:                 "fieldforge",
			SSLMode:                "disable",
			MaxOpenConns:           10,
			MaxIdleConns:           5,
			ConnMaxLifetimeMinutes: 60,
		},
		Effects: EffectsConfig{
			Backend:    types.MemoryPubSub,
			Topic:      "job.effects",
			MaxRetries: 3,
		},
	}
}

// NewConfig loads the configuration from config/config.yaml and the
// environment. Environment variables use the FIELDFORGE prefix with
// underscores, e.g. FIELDFORGE_POSTGRES_HOST.
func NewConfig() (*Configuration, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FIELDFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeAPI))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "fieldforge")
	v.SetDefault("postgres.dbname", "fieldforge")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime_minutes", 60)
	v.SetDefault("effects.backend", string(types.MemoryPubSub))
	v.SetDefault("effects.topic", "job.effects")
	v.SetDefault("effects.max_retries", 3)
	v.SetDefault("kafka.consumer_group", "fieldforge-effects")
	v.SetDefault("kafka.client_id", "fieldforge")
}

func (c Configuration) Validate() error {
	return validator.ValidateRequest(c)
}

// DSN builds the postgres connection string
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
