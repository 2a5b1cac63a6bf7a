package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config holds application configuration loaded from config files, .env and
// environment variables.
type Config struct {
	Env    string `mapstructure:"env"`  // local, development, production
	Port   string `mapstructure:"port"` // HTTP listen port
	DB     DB     `mapstructure:"database"`
	CORS   CORS   `mapstructure:"cors"`
	Server Server `mapstructure:"server"`
}

type DB struct {
	Driver   string `mapstructure:"driver"`    // postgres or sqlite
	URL      string `mapstructure:"url"`       // DSN or sqlite file
	LogLevel string `mapstructure:"log_level"` // silent, error, warn, info
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// Load reads configuration. configFile may be empty, in which case
// ./config/config.yaml is used when present.
func Load(configFile string) (*Config, error) {
	// .env is a convenience for local development only.
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "file:typedeck.db?_foreign_keys=on")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("database.driver", "DB_DRIVER")
	_ = v.BindEnv("database.url", "DB_URL")
	_ = v.BindEnv("database.log_level", "DB_LOG_LEVEL")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Comma separated origins arrive as a single element from the environment.
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)

	switch cfg.DB.Driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}

	return &cfg, nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
