// Package logging builds the zap logger used by the extraction run.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr. format is "console" or "json";
// an unparseable level falls back to info.
func New(level, format string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atomic = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = atomic

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		cfg.Encoding = "json"
	} else {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.Sampling = nil

	return cfg.Build()
}
