package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err) // missing .env is reported but the config is still usable

	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
}

func TestLoadFromEnvFile(t *testing.T) {
	// register for cleanup, godotenv will not override variables that are already set
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")
	os.Unsetenv(envLogLevel)
	os.Unsetenv(envLogFormat)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nLOG_FORMAT=json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{LogLevel: "WARN", LogFormat: LogFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNewLoggerRejectsBadSettings(t *testing.T) {
	_, err := NewLogger(Config{LogLevel: "loud", LogFormat: LogFormatText}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewLogger(Config{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
