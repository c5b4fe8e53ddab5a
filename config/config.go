package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultLogLevel = "info"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config only carries logging knobs, the returns file itself comes from the command line
type Config struct {
	LogLevel  string
	LogFormat string
}

// Load reads .env files (if any) into the environment, then builds the config from it.
// A missing .env is not an error, the process environment and defaults still apply.
func Load(filenames ...string) (Config, error) {
	envErr := godotenv.Load(filenames...)

	cfg := Config{
		LogLevel:  getEnvOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: getEnvOrDefault(envLogFormat, LogFormatText),
	}

	return cfg, envErr
}

// NewLogger builds the logger described by the config, logs always go to w and never stdout
func NewLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	logLvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %s: %w", cfg.LogLevel, err)
	}

	var logWriter io.Writer
	switch strings.ToLower(cfg.LogFormat) {
	case LogFormatJSON:
		logWriter = w
	case LogFormatText:
		logWriter = zerolog.ConsoleWriter{Out: w}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid logging format: %s", cfg.LogFormat)
	}

	return zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger(), nil
}

func getEnvOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
