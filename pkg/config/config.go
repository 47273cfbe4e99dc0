package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Catalog source kinds.
const (
	CatalogSourceCSV      = "csv"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Catalog  CatalogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Sessions SessionsConfig
	Cache    CacheConfig
	CORS     CORSConfig
	Log      LogConfig
}

// CatalogConfig selects where section rows come from.
type CatalogConfig struct {
	Source         string
	DepartmentsCSV string
	SchedulesDir   string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionsConfig governs saved-selection storage.
type SessionsConfig struct {
	Enabled bool
	TTL     time.Duration
}

// CacheConfig governs the open-alternatives response cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Catalog = CatalogConfig{
		Source:         v.GetString("CATALOG_SOURCE"),
		DepartmentsCSV: v.GetString("CATALOG_DEPARTMENTS_CSV"),
		SchedulesDir:   v.GetString("CATALOG_SCHEDULES_DIR"),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Sessions = SessionsConfig{
		Enabled: v.GetBool("ENABLE_SESSIONS"),
		TTL:     parseDuration(v.GetString("SESSION_TTL"), 30*24*time.Hour),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_SCAN_CACHE"),
		TTL:     parseDuration(v.GetString("SCAN_CACHE_TTL"), 5*time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("CATALOG_SOURCE", CatalogSourceCSV)
	v.SetDefault("CATALOG_DEPARTMENTS_CSV", "./data/depts.csv")
	v.SetDefault("CATALOG_SCHEDULES_DIR", "./data/schedules")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "enlistment")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_SESSIONS", false)
	v.SetDefault("SESSION_TTL", "720h")
	v.SetDefault("ENABLE_SCAN_CACHE", false)
	v.SetDefault("SCAN_CACHE_TTL", "5m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
