package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestLogger_WithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With("component", "cvstore")

	log.Info("cv imported", "id", "abc", "scanned", false)
	log.Debug("details")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "cv imported", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "cvstore", fields["component"])
	assert.Equal(t, "abc", fields["id"])
	assert.Equal(t, false, fields["scanned"])
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("ignored", "k", "v")
	assert.NoError(t, log.Sync())
}
