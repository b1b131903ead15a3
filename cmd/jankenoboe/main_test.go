package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns what it wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestOutputFormat_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{name: "json", value: "json", want: FormatJSON},
		{name: "yaml", value: "yaml", want: FormatYAML},
		{name: "text", value: "text", want: FormatText},
		{name: "unknown", value: "xml", want: FormatJSON, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := FormatJSON
			err := format.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, format)
			assert.Equal(t, "OutputFormat", format.Type())
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "jankenoboe", cmd.Use)
	for _, name := range []string{
		"learning-due",
		"learning-batch",
		"learning-song-levelup-ids",
		"learning-song-review",
		"learning-by-song-ids",
		"migrate",
	} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Use)
	}

	for name, want := range map[string]string{
		"config": "",
		"debug":  "false",
		"format": "json",
	} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, want, flag.DefValue)
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "--format", "xml", "learning-due")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "xml"`)
}
