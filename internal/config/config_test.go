package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"GPA_DATA_FILE", "LOG_LEVEL", "DEBUG", "GPA_JSON_LOGS", "PORT", "GIN_MODE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.JSONLogs)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.GinMode)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GPA_DATA_FILE", "/tmp/gpa.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEBUG", "1")
	t.Setenv("GPA_JSON_LOGS", "true")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")

	cfg := FromEnv()
	assert.Equal(t, "/tmp/gpa.csv", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
}
