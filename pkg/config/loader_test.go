// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp XDG config directory, environment variables
// PURPOSE: Test layered configuration loading and validation

package config_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/cio/pkg/config"
	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	testutil.Isolate(t)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, 4, cfg.Format.PrettyIndent)
	assert.Equal(t, "rounded", cfg.Table.Border)
	assert.Equal(t, []string{"bright_cyan, bold", "bold", "cyan"}, cfg.Table.Styles)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Empty(t, cfg.Source)
	assert.Contains(t, config.DefaultContent(), "[table]")
}

func TestLoad_UserFile(t *testing.T) {
	t.Run("toml in xdg dir", func(t *testing.T) {
		env := testutil.Isolate(t)
		path := env.ConfigFile(t, "config.toml", `
[table]
border = "double"

[format]
pretty_indent = 2
`)
		cfg, err := config.Load(config.LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "double", cfg.Table.Border)
		assert.Equal(t, 2, cfg.Format.PrettyIndent)
		assert.Equal(t, "auto", cfg.Output.Color)
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("yaml in xdg dir", func(t *testing.T) {
		env := testutil.Isolate(t)
		env.ConfigFile(t, "config.yaml", "output:\n  color: never\n")

		cfg, err := config.Load(config.LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "never", cfg.Output.Color)
	})

	t.Run("explicit path", func(t *testing.T) {
		testutil.Isolate(t)
		path := testutil.CreateFile(t, t.TempDir(), "custom.toml", "[table]\nstyles = [\"red\"]\n")

		cfg, err := config.Load(config.LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, []string{"red"}, cfg.Table.Styles)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		testutil.Isolate(t)
		_, err := config.Load(config.LoadOptions{Path: "/does/not/exist.toml"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("malformed file", func(t *testing.T) {
		env := testutil.Isolate(t)
		env.ConfigFile(t, "config.toml", "[table\nborder=")

		_, err := config.Load(config.LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoad_Environment(t *testing.T) {
	env := testutil.Isolate(t)
	env.ConfigFile(t, "config.toml", "[table]\nborder = \"double\"\n")
	t.Setenv("CIO_TABLE_BORDER", "ascii")
	t.Setenv("CIO_FORMAT_PRETTY_INDENT", "8")
	t.Setenv("CIO_TABLE_STYLES", "red, bold;underline")

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ascii", cfg.Table.Border)
	assert.Equal(t, 8, cfg.Format.PrettyIndent)
	assert.Equal(t, []string{"red, bold", "underline"}, cfg.Table.Styles)
}

func TestLoad_Overrides(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("CIO_OUTPUT_COLOR", "never")

	cfg, err := config.Load(config.LoadOptions{
		Overrides: map[string]interface{}{"output.color": "always"},
	})
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Output.Color)
}

func TestLoad_NormalizesCase(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("CIO_TABLE_BORDER", " Double ")

	cfg, err := config.Load(config.LoadOptions{
		Overrides: map[string]interface{}{"output.color": "ALWAYS"},
	})
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Output.Color)
	assert.Equal(t, "double", cfg.Table.Border)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  interface{}
	}{
		{"color mode", "output.color", "sometimes"},
		{"border", "table.border", "wavy"},
		{"indent", "format.pretty_indent", 0},
		{"verbosity", "log.verbosity", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Isolate(t)
			_, err := config.Load(config.LoadOptions{
				Overrides: map[string]interface{}{tt.key: tt.val},
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestConfig_FormatterOptions(t *testing.T) {
	testutil.Isolate(t)
	cfg, err := config.Load(config.LoadOptions{
		Overrides: map[string]interface{}{"format.pretty_indent": 2, "table.border": "thick"},
	})
	require.NoError(t, err)

	opts := cfg.FormatterOptions()
	assert.Equal(t, 2, opts.PrettyIndent)
	assert.Equal(t, "thick", opts.Table.Border)
	assert.Len(t, opts.Table.Styles, 3)
	assert.Len(t, cfg.RenderOptions(), 1)

	cfg.Output.Color = "always"
	on, err := cfg.ColorEnabled(os.Stdout)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestConfig_TOML(t *testing.T) {
	testutil.Isolate(t)
	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "[table]")
	assert.Contains(t, string(out), "border = 'rounded'")
	assert.Contains(t, string(out), "pretty_indent = 4")
	assert.NotContains(t, string(out), "Source")
}
