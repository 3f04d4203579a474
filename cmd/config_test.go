package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "snapdiff", configBaseName)
	assert.Equal(t, "snapdiff.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "mode", modeFlagName)
	assert.Equal(t, "template", templateFlagName)
	assert.Equal(t, "report.mode", renderModeConfigKey)
	assert.Equal(t, "report.template", reportTemplateConfigKey)
	assert.Equal(t, "styled", defaultRenderMode)
	assert.Equal(t, "", defaultReportTemplate)
	assert.Equal(t, "SNAPDIFF", envPrefix)
	assert.Equal(t, ".snapdiff.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty string", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"padded", "  info  ", slog.LevelInfo},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
