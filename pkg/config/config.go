package config

import (
	"os"
	"slices"
	"strings"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/formatters"
	"github.com/arthur-debert/cio/pkg/render"
	"github.com/pelletier/go-toml/v2"
)

// Config is the merged cio configuration.
type Config struct {
	Output OutputConfig `koanf:"output" toml:"output"`
	Format FormatConfig `koanf:"format" toml:"format"`
	Table  TableConfig  `koanf:"table" toml:"table"`
	Log    LogConfig    `koanf:"log" toml:"log"`

	// Source is the user file that was loaded, if any.
	Source string `koanf:"-" toml:"-"`
}

type OutputConfig struct {
	// Color is auto, always or never.
	Color string `koanf:"color" toml:"color"`
}

type FormatConfig struct {
	PrettyIndent int `koanf:"pretty_indent" toml:"pretty_indent"`
}

type TableConfig struct {
	Border string   `koanf:"border" toml:"border"`
	Styles []string `koanf:"styles" toml:"styles"`
}

type LogConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Validate normalizes enumerated settings to lower case and checks them
// along with the numeric ones.
func (c *Config) Validate() error {
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	c.Table.Border = strings.ToLower(strings.TrimSpace(c.Table.Border))

	switch c.Output.Color {
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
	default:
		return errors.Newf(errors.ErrConfigParse, "invalid output.color %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	if !slices.Contains(formatters.BorderNames(), c.Table.Border) {
		return errors.Newf(errors.ErrConfigParse, "invalid table.border %q", c.Table.Border).
			WithDetail("key", "table.border").
			WithDetail("accepted", formatters.BorderNames())
	}
	if c.Format.PrettyIndent < 1 {
		return errors.Newf(errors.ErrConfigParse, "format.pretty_indent must be positive, got %d", c.Format.PrettyIndent).
			WithDetail("key", "format.pretty_indent")
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigParse, "log.verbosity must not be negative, got %d", c.Log.Verbosity).
			WithDetail("key", "log.verbosity")
	}
	return nil
}

// FormatterOptions converts the format and table sections.
func (c *Config) FormatterOptions() formatters.Options {
	return formatters.Options{
		PrettyIndent: c.Format.PrettyIndent,
		Table: formatters.TableOptions{
			Border: c.Table.Border,
			Styles: append([]string(nil), c.Table.Styles...),
		},
	}
}

// RenderOptions returns the renderer options implied by the configuration.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{render.WithFormatterOptions(c.FormatterOptions())}
}

// ColorEnabled decides whether output to f is colored.
func (c *Config) ColorEnabled(f *os.File) (bool, error) {
	return render.ResolveColor(c.Output.Color, f)
}

// TOML returns the effective settings as a TOML document.
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
