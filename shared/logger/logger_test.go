package logger_test

import (
	"bytes"
	"dormy/config"
	"dormy/shared/logger"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitLoggerWithWriter(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	logger.InitLoggerWithWriter(&buf, false)

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	log.Info().Str("listing", "abc").Msg("hello")

	if !bytes.Contains(buf.Bytes(), []byte(`"listing":"abc"`)) {
		t.Errorf("expected JSON field in output, got %s", buf.String())
	}
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("approve failed"))

	if !bytes.Contains(buf.Bytes(), []byte("approve failed")) {
		t.Errorf("expected log output to contain error, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"upper case warn", "WARN", zerolog.WarnLevel},
		{"padded error", " error ", zerolog.ErrorLevel},
		{"empty falls back to info", "", zerolog.InfoLevel},
		{"garbage falls back to info", "loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}
