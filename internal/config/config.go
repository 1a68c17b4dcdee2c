package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds all application configuration
type Config struct {
	Telegram TelegramConfig
	Weather  WeatherConfig
	Database DatabaseConfig
	Log      LogConfig
}

// TelegramConfig holds update polling and processing settings
type TelegramConfig struct {
	BotToken       string        `envconfig:"BOT_TOKEN" required:"true"`
	PollTimeout    time.Duration `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"10s"`
	Workers        int           `envconfig:"TELEGRAM_WORKERS" default:"8"`
	HandlerTimeout time.Duration `envconfig:"TELEGRAM_HANDLER_TIMEOUT" default:"30s"`
}

// WeatherConfig holds OpenWeatherMap settings
type WeatherConfig struct {
	APIKey  string        `envconfig:"WEATHER_API_KEY" required:"true"`
	APIURL  string        `envconfig:"WEATHER_API_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	IconURL string        `envconfig:"WEATHER_ICON_URL" default:"https://openweathermap.org/img/wn/%s@2x.png"`
	Units   string        `envconfig:"WEATHER_UNITS" default:"metric"`
	Lang    string        `envconfig:"WEATHER_LANG"`
	Timeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"postgres"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"weatherbot"`
	User     string `envconfig:"DB_USER" default:"weatherbot"`
	Password string `envconfig:"DB_PASSWORD"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	Path     string `envconfig:"DB_PATH" default:"database.db"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEVELOPMENT"`
	File        string `envconfig:"LOG_FILE"`
	MaxSizeMB   int    `envconfig:"LOG_MAX_SIZE_MB" default:"50"`
	MaxBackups  int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAgeDays  int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	sections := []interface{}{&cfg.Telegram, &cfg.Weather, &cfg.Database, &cfg.Log}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process env: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	// envconfig accepts a variable that is set but empty
	if strings.TrimSpace(c.Telegram.BotToken) == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		return fmt.Errorf("WEATHER_API_KEY is required")
	}

	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres driver")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite3 driver")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER %q; allowed: postgres, sqlite3", c.Database.Driver)
	}

	switch c.Weather.Units {
	case "metric", "imperial", "standard":
	default:
		return fmt.Errorf("invalid WEATHER_UNITS %q; allowed: metric, imperial, standard", c.Weather.Units)
	}

	if c.Telegram.Workers <= 0 {
		return fmt.Errorf("TELEGRAM_WORKERS must be > 0")
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Database.Driver == DriverSQLite {
		return SQLiteDSN(c.Database.Path)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SQLiteDSN turns a database path into a DSN with foreign keys enabled
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + url.Values{"_foreign_keys": {"on"}}.Encode()
}
