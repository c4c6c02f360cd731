package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestForMode(t *testing.T) {
	l := ForMode("prod", "")
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l = ForMode("dev", "")
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l = ForMode("prod", "error")
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
}
