package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/config"
)

// isolate points the config directory at an empty temp dir and clears the
// VLIST_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, name := range []string{config.EnvBuffer, config.EnvItemHeight, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(name, "")
	}
	return home
}

func TestNew_Defaults(t *testing.T) {
	isolate(t)

	cfg := config.New()

	assert.Equal(t, config.DefaultBuffer, cfg.List.Buffer)
	assert.Equal(t, config.DefaultItemHeight, cfg.List.ItemHeight)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestNew_ReadsUserConfigFile(t *testing.T) {
	home := isolate(t)
	user := config.Defaults()
	user.List.Buffer = 12
	user.List.Header = "Logs"
	require.NoError(t, user.Save(filepath.Join(home, "config.yaml")))

	cfg := config.New()

	assert.Equal(t, 12, cfg.List.Buffer)
	assert.Equal(t, "Logs", cfg.List.Header)
}

func TestLoad_ReportsBrokenUserConfigFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("list: [oops\n"), 0o600))

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading user config")
	assert.Contains(t, err.Error(), "parsing overlay YAML")

	_, err = config.Load(writeOverlay(t, "list:\n  buffer: 2\n"))
	require.Error(t, err, "an explicit overlay does not hide a broken user file")

	// New stays usable for the global singleton and falls back to defaults.
	t.Setenv(config.EnvItemHeight, "2")
	cfg := config.New()
	assert.Equal(t, config.DefaultBuffer, cfg.List.Buffer)
	assert.Equal(t, 2, cfg.List.ItemHeight)
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvBuffer, "9")
	t.Setenv(config.EnvItemHeight, "3")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")

	cfg := config.New()

	assert.Equal(t, 9, cfg.List.Buffer)
	assert.Equal(t, 3, cfg.List.ItemHeight)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNew_IgnoresUnparseableEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvBuffer, "lots")

	assert.Equal(t, config.DefaultBuffer, config.New().List.Buffer)
}

func TestLoad(t *testing.T) {
	isolate(t)

	t.Run("no path", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultBuffer, cfg.List.Buffer)
	})

	t.Run("overlay", func(t *testing.T) {
		cfg, err := config.Load(writeOverlay(t, "list:\n  buffer: 2\n  item_height: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.List.Buffer)
		assert.Equal(t, 4, cfg.List.ItemHeight)
	})

	t.Run("environment beats overlay", func(t *testing.T) {
		t.Setenv(config.EnvBuffer, "7")
		cfg, err := config.Load(writeOverlay(t, "list:\n  buffer: 2\n"))
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.List.Buffer)
	})

	t.Run("invalid item height", func(t *testing.T) {
		_, err := config.Load(writeOverlay(t, "list:\n  item_height: 0\n"))
		require.ErrorIs(t, err, config.ErrInvalidItemHeight)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		list    config.ListConfig
		wantErr error
	}{
		{name: "valid", list: config.ListConfig{Buffer: 0, ItemHeight: 1}},
		{name: "zero height", list: config.ListConfig{Buffer: 1, ItemHeight: 0}, wantErr: config.ErrInvalidItemHeight},
		{name: "negative height", list: config.ListConfig{ItemHeight: -2}, wantErr: config.ErrInvalidItemHeight},
		{name: "negative buffer", list: config.ListConfig{Buffer: -1, ItemHeight: 1}, wantErr: config.ErrInvalidBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&config.Config{List: tt.list}).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "json"}
	assert.Equal(t, "stderr", lc.ToLoggingConfig().Output)

	lc.File = "/var/log/vlist.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/var/log/vlist.log", got.File)
	assert.Equal(t, "warn", got.Level)
}
