package logger

import (
	"os"
	"path/filepath"
	"testing"

	"weatherbot/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	log, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.LogConfig
		debugActive bool
	}{
		{name: "production info", cfg: config.LogConfig{Level: "info"}, debugActive: false},
		{name: "development debug", cfg: config.LogConfig{Level: "debug", Development: true}, debugActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debugActive, log.Core().Enabled(-1))
		})
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	log, err := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("hello from test")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}
