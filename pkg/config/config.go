package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the service
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	Database        DatabaseConfig        `mapstructure:"database"`
	Redis           RedisConfig           `mapstructure:"redis"`
	Personalization PersonalizationConfig `mapstructure:"personalization"`
	LogLevel        string                `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type PersonalizationConfig struct {
	Workers          int           `mapstructure:"workers"`
	QueueName        string        `mapstructure:"queue_name"`
	ProfileTTL       time.Duration `mapstructure:"profile_ttl"`
	PageEventWindow  time.Duration `mapstructure:"page_event_window"`
	DequeueTimeout   time.Duration `mapstructure:"dequeue_timeout"`
	DelayedSweepTick time.Duration `mapstructure:"delayed_sweep_tick"`
	StaticInterests  []string      `mapstructure:"static_interests"`
}

// DSN builds the Postgres connection string
func (d DatabaseConfig) DSN() string {
	parts := []string{
		"host=" + d.Host,
		"port=" + d.Port,
		"user=" + d.User,
		"password=" + d.Password,
		"dbname=" + d.Name,
		"sslmode=" + d.SSLMode,
	}
	return strings.Join(parts, " ")
}

// Load reads configuration from config.yaml (optional) and CONECTA_* env vars
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "conecta")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("personalization.workers", 4)
	v.SetDefault("personalization.queue_name", "personalization:events")
	v.SetDefault("personalization.profile_ttl", 30*24*time.Hour)
	v.SetDefault("personalization.page_event_window", 24*time.Hour)
	v.SetDefault("personalization.dequeue_timeout", 5*time.Second)
	v.SetDefault("personalization.delayed_sweep_tick", 30*time.Second)
	v.SetDefault("personalization.static_interests", []string{})
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/conecta")

	v.SetEnvPrefix("CONECTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env vars and defaults suffice
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
