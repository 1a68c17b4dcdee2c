package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequired sets the minimal environment for a postgres-backed config
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("WEATHER_API_KEY", "test_weather_key")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{
			name: "postgres",
			cfg: Config{Database: DatabaseConfig{
				Driver:   DriverPostgres,
				Host:     "localhost",
				Port:     "5432",
				User:     "testuser",
				Password: "testpass",
				Name:     "testdb",
				SSLMode:  "disable",
			}},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
		{
			name:     "sqlite file",
			cfg:      Config{Database: DatabaseConfig{Driver: DriverSQLite, Path: "database.db"}},
			expected: "file:database.db?_foreign_keys=on",
		},
		{
			name:     "sqlite uri with params",
			cfg:      Config{Database: DatabaseConfig{Driver: DriverSQLite, Path: "file:test?mode=memory&cache=shared"}},
			expected: "file:test?mode=memory&cache=shared&_foreign_keys=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test_token", cfg.Telegram.BotToken)
	assert.Equal(t, 10*time.Second, cfg.Telegram.PollTimeout)
	assert.Equal(t, 8, cfg.Telegram.Workers)
	assert.Equal(t, 30*time.Second, cfg.Telegram.HandlerTimeout)

	assert.Equal(t, "test_weather_key", cfg.Weather.APIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.Weather.APIURL)
	assert.Equal(t, "metric", cfg.Weather.Units)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "weatherbot", cfg.Database.Name)
	assert.Equal(t, "weatherbot", cfg.Database.User)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DRIVER", "SQLite3")
	t.Setenv("DB_PATH", "/tmp/weather.db")
	t.Setenv("WEATHER_UNITS", "imperial")
	t.Setenv("TELEGRAM_WORKERS", "2")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:/tmp/weather.db?_foreign_keys=on", cfg.DSN())
	assert.Equal(t, "imperial", cfg.Weather.Units)
	assert.Equal(t, 2, cfg.Telegram.Workers)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{
			name:     "missing bot token",
			env:      map[string]string{"BOT_TOKEN": ""},
			contains: "BOT_TOKEN",
		},
		{
			name:     "missing weather key",
			env:      map[string]string{"WEATHER_API_KEY": ""},
			contains: "WEATHER_API_KEY",
		},
		{
			name:     "missing db password for postgres",
			env:      map[string]string{"DB_PASSWORD": ""},
			contains: "DB_PASSWORD",
		},
		{
			name:     "unknown driver",
			env:      map[string]string{"DB_DRIVER": "mysql"},
			contains: "DB_DRIVER",
		},
		{
			name:     "unknown units",
			env:      map[string]string{"WEATHER_UNITS": "kelvin"},
			contains: "WEATHER_UNITS",
		},
		{
			name:     "no workers",
			env:      map[string]string{"TELEGRAM_WORKERS": "0"},
			contains: "TELEGRAM_WORKERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
