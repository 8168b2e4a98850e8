package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"DB_HOST"`
	Port     int    `mapstructure:"port" envconfig:"DB_PORT"`
	User     string `mapstructure:"user" envconfig:"DB_USER"`
	Password string `mapstructure:"password" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"name" envconfig:"DB_NAME"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"DB_SSLMODE"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url" envconfig:"REDIS_URL"`
	MaxRetries   int           `mapstructure:"max_retries" envconfig:"REDIS_MAX_RETRIES"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff" envconfig:"REDIS_RETRY_BACKOFF"`
	PoolSize     int           `mapstructure:"pool_size" envconfig:"REDIS_POOL_SIZE"`
	MinIdleConns int           `mapstructure:"min_idle_conns" envconfig:"REDIS_MIN_IDLE_CONNS"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port     int    `mapstructure:"port" envconfig:"SMTP_PORT"`
	Username string `mapstructure:"username" envconfig:"SMTP_USERNAME"`
	Password string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From     string `mapstructure:"from" envconfig:"SMTP_FROM"`
}

type OutboxConfig struct {
	BatchSize     int           `mapstructure:"batch_size" envconfig:"OUTBOX_BATCH_SIZE"`
	PollInterval  time.Duration `mapstructure:"poll_interval" envconfig:"OUTBOX_POLL_INTERVAL"`
	RetryAttempts int           `mapstructure:"retry_attempts" envconfig:"OUTBOX_RETRY_ATTEMPTS"`
	RetryDelay    time.Duration `mapstructure:"retry_delay" envconfig:"OUTBOX_RETRY_DELAY"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl" envconfig:"CACHE_TTL"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Outbox   OutboxConfig   `mapstructure:"outbox"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// LoadConfig reads config.yml and applies environment overrides on top, so
// deployments can tweak single values without shipping a new file.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Outbox.BatchSize == 0 {
		c.Outbox.BatchSize = 50
	}
	if c.Outbox.PollInterval == 0 {
		c.Outbox.PollInterval = 5 * time.Second
	}
	if c.Outbox.RetryAttempts == 0 {
		c.Outbox.RetryAttempts = 3
	}
	if c.Outbox.RetryDelay == 0 {
		c.Outbox.RetryDelay = time.Second
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 30 * time.Second
	}
}
