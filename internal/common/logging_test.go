package common

import "testing"

func TestNewSilentLogger_NoPanic(t *testing.T) {
	logger := NewSilentLogger()
	logger.Info().Str("key", "value").Msg("should be discarded")
	logger.Warn().Msg("should be discarded")
	logger.Error().Msg("should be discarded")
}

func TestNewLoggerFromConfig_ConsoleOnly(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{
		Level:   "error",
		Outputs: []string{"console"},
	})
	if logger == nil {
		t.Fatal("Expected logger")
	}
	logger.Debug().Msg("below level, discarded")
}

func TestWithCorrelationId(t *testing.T) {
	logger := NewSilentLogger()
	scoped := logger.WithCorrelationId("abc-123")
	if scoped == nil {
		t.Fatal("Expected scoped logger")
	}
	scoped.Info().Msg("tagged message")
}
