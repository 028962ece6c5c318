package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("script", "", "")
	fs.String("log-level", "", "")
	fs.Bool("no-menu", false, "")
	fs.Int("precision", 0, "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sparsesheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.ShowMenu)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.Equal(t, DefaultMaxPrintRows, cfg.MaxPrintRows)
	assert.Equal(t, DefaultMaxPrintCols, cfg.MaxPrintCols)
}

func TestLoadPrecedence(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
prompt: "sheet> "
log_level: info
precision: 2
max_print_rows: 10
`)
	t.Setenv("SPARSESHEET_PRECISION", "3")
	t.Setenv("SPARSESHEET_MAX_PRINT_COLS", "4")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--no-menu"}))

	cfg, used, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "sheet> ", cfg.Prompt)
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, 10, cfg.MaxPrintRows)
	assert.Equal(t, 4, cfg.MaxPrintCols)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ShowMenu)
}

func TestLoadUnsetFlagsDoNotOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, "precision: 2\n")

	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	cfg, _, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Precision)
	assert.True(t, cfg.ShowMenu)
}

func TestLoadFindsConfigInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sparsesheet.yml"), []byte("show_menu: false\n"), 0o644))
	t.Chdir(dir)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sparsesheet.yml", used)
	assert.False(t, cfg.ShowMenu)
}

func TestLoadErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")

	_, _, err = Load(writeConfig(t, "log_level: loud\n"), nil)
	assert.ErrorContains(t, err, "invalid log level")

	_, _, err = Load(writeConfig(t, "precision: -2\n"), nil)
	assert.ErrorContains(t, err, "precision")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		errSubstr string
	}{
		{
			name: "valid",
			cfg:  Config{LogLevel: "info", Precision: -1},
		},
		{
			name:      "bad level",
			cfg:       Config{LogLevel: "chatty"},
			wantErr:   true,
			errSubstr: "invalid log level",
		},
		{
			name:      "negative limits",
			cfg:       Config{LogLevel: "warn", MaxPrintRows: -1},
			wantErr:   true,
			errSubstr: "print limits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestControllerOptions(t *testing.T) {
	cfg := Config{Prompt: "> ", ShowMenu: true, Precision: 2, MaxPrintRows: 3, MaxPrintCols: 4}
	opts := cfg.ControllerOptions()

	assert.Equal(t, "> ", opts.Prompt)
	assert.True(t, opts.ShowMenu)
	assert.Equal(t, 2, opts.Render.Precision)
	assert.Equal(t, 3, opts.Render.MaxRows)
	assert.Equal(t, 4, opts.Render.MaxCols)
}
