package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentsh/sigcompat/internal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesSignalSetups(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sigcompat.yml")
	if err := os.WriteFile(cfgPath, []byte(`
logging:
  level: debug
  format: json
signals:
  - signals: ["SIGHUP", "int"]
    action: ignore
  - signals: ["15"]
    action: Default
    restart: false
    siginfo: true
`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SIGCOMPAT_LOG_LEVEL", "")
	t.Setenv("SIGCOMPAT_LOG_FORMAT", "")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	setups, err := cfg.Setups()
	require.NoError(t, err)
	assert.Equal(t, []signal.Setup{
		{Signal: 1, Handler: signal.HandlerIgnore, Restart: true},
		{Signal: 2, Handler: signal.HandlerIgnore, Restart: true},
		{Signal: 15, Handler: signal.HandlerDefault, SigInfo: true},
	}, setups)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sigcompat.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: info\n"), 0o600))
	t.Setenv("SIGCOMPAT_LOG_LEVEL", "error")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`signals: [{signals: ["SIGTERM"], action: ignore}]`))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	require.Len(t, cfg.Signals, 1)
	require.NotNil(t, cfg.Signals[0].Restart)
	assert.True(t, *cfg.Signals[0].Restart)
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "signals: [", "parse config"},
		{"bad level", "logging: {level: loud}", "logging.level"},
		{"bad format", "logging: {format: xml}", "logging.format"},
		{"bad action", `signals: [{signals: ["SIGHUP"], action: catch}]`, "invalid action"},
		{"empty signals", `signals: [{action: ignore}]`, "no signals listed"},
		{"unknown signal", `signals: [{signals: ["SIGNOPE"], action: ignore}]`, "unknown signal"},
		{"unknown group", `signals: [{signals: ["@nope"], action: ignore}]`, "unknown signal group"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSetups_LaterEntryWins(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
signals:
  - signals: ["SIGINT", "SIGTERM"]
    action: ignore
  - signals: ["SIGINT"]
    action: default
    restart: false
`))
	require.NoError(t, err)

	setups, err := cfg.Setups()
	require.NoError(t, err)
	require.Len(t, setups, 2)
	assert.Equal(t, signal.Setup{Signal: 2, Handler: signal.HandlerDefault}, setups[0])
	assert.Equal(t, signal.Setup{Signal: 15, Handler: signal.HandlerIgnore, Restart: true}, setups[1])
}

func TestLoggingConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LoggingConfig{Level: "warn", Format: "json"}.Logger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "signal", "SIGHUP")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "json output expected, got %q", out)
	assert.Contains(t, out, `"signal":"SIGHUP"`)

	_, err = LoggingConfig{Level: "verbose"}.Logger(&buf)
	assert.Error(t, err)
}
