package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "github.com/falahh6/weather-api/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestNamedCategoryLogger(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLoggerWith(
		LoggerNameWeatherCore,
		zap.String(LoggerFieldWeatherCategory, LoggerCategoryWeatherIngest),
	)
	logger.Info("Ingest cycle started")

	logOutput := buf.String()
	if !strings.Contains(logOutput, LoggerNameWeatherCore) {
		t.Errorf("expected log output to carry logger name, got: %s", logOutput)
	}
	if !strings.Contains(logOutput, LoggerCategoryWeatherIngest) {
		t.Errorf("expected log output to carry category field, got: %s", logOutput)
	}
}
