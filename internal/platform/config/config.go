package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"babylog/internal/domain/clock"

	"github.com/spf13/viper"
)

// Config es la configuración del proceso. Orden de prioridad:
// env > archivo (CONFIG_FILE) > defaults.
type Config struct {
	Port string

	LogLevel  string
	LogFormat string
	AppName   string
	LogFile   string

	// Timezone es la zona por defecto para agrupar por día y promediar.
	Timezone string

	// Backends opcionales; vacío = in-memory.
	DBDSN         string
	MongoURI      string
	MongoDatabase string
	SettingsPath  string

	NotifyBaseURL string
	NotifyAPIKey  string

	// Sin AuthBaseURL el servidor corre en modo dev (X-Debug-User-ID).
	AuthBaseURL string
	AuthAPIKey  string

	ShutdownTimeout time.Duration
}

// keys: clave de viper => variable de entorno.
var keys = map[string]string{
	"port":             "PORT",
	"log_level":        "LOG_LEVEL",
	"log_format":       "LOG_FORMAT",
	"app_name":         "APP_NAME",
	"log_file":         "LOG_FILE",
	"timezone":         "TIMEZONE",
	"db_dsn":           "DB_DSN",
	"mongo_uri":        "MONGO_URI",
	"mongo_database":   "MONGO_DATABASE",
	"settings_path":    "SETTINGS_PATH",
	"notify_base_url":  "NOTIFY_BASE_URL",
	"notify_api_key":   "NOTIFY_API_KEY",
	"auth_base_url":    "AUTH_BASE_URL",
	"auth_api_key":     "AUTH_API_KEY",
	"shutdown_timeout": "SHUTDOWN_TIMEOUT",
}

// Load lee la configuración. Si CONFIG_FILE apunta a un archivo que no
// existe es un error; si no viene, solo se usan env y defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "babylog")
	v.SetDefault("timezone", "Local")
	v.SetDefault("mongo_database", "babylog")
	v.SetDefault("shutdown_timeout", "10s")

	for key, env := range keys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config file not found: %s", path)
			}
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		Port:            strings.TrimSpace(v.GetString("port")),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		AppName:         v.GetString("app_name"),
		LogFile:         strings.TrimSpace(v.GetString("log_file")),
		Timezone:        strings.TrimSpace(v.GetString("timezone")),
		DBDSN:           strings.TrimSpace(v.GetString("db_dsn")),
		MongoURI:        strings.TrimSpace(v.GetString("mongo_uri")),
		MongoDatabase:   strings.TrimSpace(v.GetString("mongo_database")),
		SettingsPath:    strings.TrimSpace(v.GetString("settings_path")),
		NotifyBaseURL:   strings.TrimSpace(v.GetString("notify_base_url")),
		NotifyAPIKey:    strings.TrimSpace(v.GetString("notify_api_key")),
		AuthBaseURL:     strings.TrimSpace(v.GetString("auth_base_url")),
		AuthAPIKey:      strings.TrimSpace(v.GetString("auth_api_key")),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if _, err := clock.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.MongoURI != "" && c.MongoDatabase == "" {
		return errors.New("mongo_database is required when mongo_uri is set")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}

// Location resuelve Timezone (ya validado en Load).
func (c Config) Location() *time.Location {
	loc, err := clock.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Addr es la dirección de escucha.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// DevAuth indica si no hay verificador remoto configurado.
func (c Config) DevAuth() bool {
	return c.AuthBaseURL == "" || c.AuthAPIKey == ""
}
