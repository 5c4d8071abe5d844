package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	PoolMaxConns   int32
	ConnectTimeout time.Duration
	MigrationsDir  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// AdminConfig gates mutating endpoints. When AccessSecret is empty the
// API runs fully open, which is how the public portfolio is deployed.
type AdminConfig struct {
	Username         string
	PasswordHash     string
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

func (a AdminConfig) Enabled() bool {
	return strings.TrimSpace(a.AccessSecret) != ""
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "portfolio-api"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:           opt("DB_HOST", "localhost"),
		Port:           opt("DB_PORT", "5432"),
		Name:           req("DB_NAME"),
		User:           req("DB_USER"),
		Password:       os.Getenv("DB_PASSWORD"),
		SSLMode:        opt("DB_SSL_MODE", "disable"),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		ConnectTimeout: optSeconds("DB_CONNECT_TIMEOUT", 0),
		MigrationsDir:  opt("DB_MIGRATIONS_DIR", "migrations"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	cfg.Admin = AdminConfig{
		Username:         opt("ADMIN_USERNAME", "admin"),
		PasswordHash:     os.Getenv("ADMIN_PASSWORD_HASH"),
		AccessSecret:     os.Getenv("ADMIN_ACCESS_SECRET"),
		RefreshSecret:    os.Getenv("ADMIN_REFRESH_SECRET"),
		AccessExpiresIn:  optSeconds("ADMIN_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optSeconds("ADMIN_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
