package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the console API service.
type Config struct {
	AppName              string
	AppEnv               string
	AppPort              string
	DatabasePath         string
	RedisURL             string
	JWTSecret            string
	TokenTTL             time.Duration
	ReminderPollInterval time.Duration
	DashboardCacheTTL    time.Duration
	ImportMaxSizeMB      int
	SeedDemoData         bool
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CAMPUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Campus Console API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("database.path", "campus-console.db")
	v.SetDefault("token.ttl", "24h")
	v.SetDefault("reminder.poll_interval", "30s")
	v.SetDefault("dashboard.cache_ttl", "5m")
	v.SetDefault("import.max_size_mb", 5)
	v.SetDefault("seed.demo_data", true)

	tokenTTL, err := time.ParseDuration(v.GetString("token.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid token ttl: %w", err)
	}

	pollInterval, err := time.ParseDuration(v.GetString("reminder.poll_interval"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid reminder poll interval: %w", err)
	}
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}

	cacheTTL, err := time.ParseDuration(v.GetString("dashboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	cfg := Config{
		AppName:              v.GetString("app.name"),
		AppEnv:               v.GetString("app.env"),
		AppPort:              v.GetString("app.port"),
		DatabasePath:         v.GetString("database.path"),
		RedisURL:             v.GetString("redis.url"),
		JWTSecret:            v.GetString("jwt.secret"),
		TokenTTL:             tokenTTL,
		ReminderPollInterval: pollInterval,
		DashboardCacheTTL:    cacheTTL,
		ImportMaxSizeMB:      v.GetInt("import.max_size_mb"),
		SeedDemoData:         v.GetBool("seed.demo_data"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.ImportMaxSizeMB <= 0 {
		cfg.ImportMaxSizeMB = 5
	}

	return cfg, nil
}
