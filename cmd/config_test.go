package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "arlsp", configBaseName)
	assert.Equal(t, "arlsp.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "normalize.write", writeConfigKey)
	assert.Equal(t, ".arlsp", defaultOutputDir)
	assert.Equal(t, 4, defaultRunParallel)
	assert.Equal(t, "ARLSP", envPrefix)
	assert.Equal(t, ".arlsp.log", defaultLogFilename)
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
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper", "INFO", slog.LevelInfo},
		{"warning alias", " warning ", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "chatty", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	dir := chdirTemp(t)

	configureLogger("", true)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	configureLogger(dir+"/custom.log", false)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.Same(t, globalLogger, slog.Default())
}
