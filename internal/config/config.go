// Package config loads the service configuration from an env file and the
// process environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Credential storage backends.
const (
	CredentialsFile  = "file"
	CredentialsRedis = "redis"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Postgres    PostgresConfig
	JWT         JWTConfig
	Credentials CredentialsConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
}

type AppConfig struct {
	Host     string `env:"APP_HOST, default=localhost"`
	Port     string `env:"APP_PORT, default=8080"`
	LogLevel string `env:"APP_LOG_LEVEL, default=info"`
}

type DBConfig struct {
	Driver string `env:"DB_DRIVER, default=pgx"`
	// DSN overrides the Postgres connection settings when set.
	DSN string `env:"DB_DSN"`
}

type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST, default=localhost"`
	Port         int    `env:"POSTGRES_PORT, default=5432"`
	User         string `env:"POSTGRES_USER, default=user"`
	Password     string `env:"POSTGRES_PASSWORD, default=password"`
	DB           string `env:"POSTGRES_DB, default=shelter"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS, default=16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS, default=8"`
}

type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY, default=my_super_secret_key"`
	ExpSecond int    `env:"JWT_EXP_SECOND, default=3600"`
}

type CredentialsConfig struct {
	Backend  string `env:"CREDENTIALS_BACKEND, default=file"`
	File     string `env:"CREDENTIALS_FILE, default=users.json"`
	RedisKey string `env:"CREDENTIALS_REDIS_KEY, default=shelter:users"`
}

type RedisConfig struct {
	Host         string `env:"REDIS_HOST, default=localhost"`
	Port         int    `env:"REDIS_PORT, default=6379"`
	DB           int    `env:"REDIS_DB, default=0"`
	Password     string `env:"REDIS_PASSWORD"`
	PoolSize     int    `env:"REDIS_POOL_SIZE, default=10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS, default=2"`
}

type KafkaConfig struct {
	// Brokers is empty when change events are disabled.
	Brokers []string `env:"KAFKA_BROKERS, delimiter=,"`
	Topic   string   `env:"KAFKA_TOPIC, default=shelter.changes"`
}

// Load reads the env file at path (a missing file is ignored) and decodes
// the environment into a Config.
func Load(ctx context.Context, path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "pgx", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.Credentials.Backend {
	case CredentialsFile, CredentialsRedis:
	default:
		return fmt.Errorf("unsupported CREDENTIALS_BACKEND %q", c.Credentials.Backend)
	}
	if c.JWT.ExpSecond <= 0 {
		return fmt.Errorf("JWT_EXP_SECOND must be positive, got %d", c.JWT.ExpSecond)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// DefaultSQLiteFile is the database file used by the sqlite driver when
// DB_DSN is empty.
const DefaultSQLiteFile = "shelter.db"

// DataSource returns DB_DSN. Without it, sqlite gets DefaultSQLiteFile and
// pgx a Postgres URL built from the POSTGRES_* keys.
func (c *Config) DataSource() string {
	if c.DB.DSN != "" {
		return c.DB.DSN
	}
	if c.DB.Driver == "sqlite" {
		return DefaultSQLiteFile
	}
	p := c.Postgres
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

// Addr is the Redis address.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TokenTTL is the configured session token lifetime.
func (c JWTConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpSecond) * time.Second
}
