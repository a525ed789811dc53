package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swatto86/checksum-check/internal/config"
)

// newTestCommand returns a bare cobra command with flags bound to cfg.
func newTestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)
	return cmd
}

func TestBindFlags_DefaultValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	err := cmd.ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.Template)
	assert.Equal(t, 1, cfg.Jobs)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.ConfigFile)
}

func TestBindFlags_Format(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default", []string{}, "text"},
		{"long form", []string{"--format", "json"}, "json"},
		{"short form", []string{"-f", "yaml"}, "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := newTestCommand(cfg)

			err := cmd.ParseFlags(tt.args)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, cfg.Format)
		})
	}
}

func TestBindFlags_Jobs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{"default", []string{}, 1},
		{"long form", []string{"--jobs", "8"}, 8},
		{"short form", []string{"-j", "4"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := newTestCommand(cfg)

			err := cmd.ParseFlags(tt.args)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, cfg.Jobs)
		})
	}
}

func TestBindFlags_Template(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	err := cmd.ParseFlags([]string{"--template", "{sha256}  {path}"})
	require.NoError(t, err)

	assert.Equal(t, "{sha256}  {path}", cfg.Template)
}

func TestBindFlags_BoolFlags(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	err := cmd.ParseFlags([]string{"--no-color", "-v"})
	require.NoError(t, err)

	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Verbose)
}

func TestValidateFlags_Defaults(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{}))

	assert.NoError(t, ValidateFlags(cmd, cfg))
}

func TestValidateFlags_FormatTemplateMutuallyExclusive(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--format", "json", "--template", "{md5}"}))

	err := ValidateFlags(cmd, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidateFlags_UnknownFormat(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--format", "xml"}))

	err := ValidateFlags(cmd, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestValidateFlags_JobsMustBePositive(t *testing.T) {
	for _, jobs := range []string{"0", "-2"} {
		cfg := config.NewDefaultConfig()
		cmd := newTestCommand(cfg)

		require.NoError(t, cmd.ParseFlags([]string{"--jobs", jobs}))

		err := ValidateFlags(cmd, cfg)
		assert.Error(t, err, "jobs=%s", jobs)
		assert.Contains(t, err.Error(), "--jobs", "jobs=%s", jobs)
	}
}

func TestValidateFlags_ConfigMustExist(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--config", "/nonexistent/config"}))

	err := ValidateFlags(cmd, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--config")
}

func TestValidateFlags_ConfigExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("FORMAT=json\n"), 0644))

	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))

	assert.NoError(t, ValidateFlags(cmd, cfg))
}

func TestValidateFlags_BadTemplate(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--template", "{sha3}"}))

	err := ValidateFlags(cmd, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown placeholder")
}

func TestValidateFlags_ValidTemplate(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newTestCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--template", "{md5}  {path}"}))

	assert.NoError(t, ValidateFlags(cmd, cfg))
}
