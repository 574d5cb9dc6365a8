// Package formatters turns resolved values into text for `{expr:spec}`
// placeholders.
//
// Named formatters live in a registry keyed by their specifier:
//
//	a  nested arrays, one element per line
//	c  compact single-line debug text
//	j  pretty multi-line debug text
//	m  matrix with bracket glyphs
//	d  determinant with vertical bars
//	t  bordered table, optional headers as t(H1, H2)
//
// Any specifier that is not registered is handed to Primitive, which
// implements width, fill, alignment, sign, precision and base handling.
package formatters

import (
	"github.com/arthur-debert/cio/pkg/registry"
	"github.com/arthur-debert/cio/pkg/repr"
	"github.com/arthur-debert/cio/pkg/resolver"
)

// Formatter renders a value. args holds the specifier's argument list and
// is nil when none was written.
type Formatter interface {
	Format(v resolver.Value, args []string) string
}

// Func adapts a function to a Formatter.
type Func func(v resolver.Value, args []string) string

// Format implements Formatter.
func (f Func) Format(v resolver.Value, args []string) string {
	return f(v, args)
}

// Options tunes the stock formatters.
type Options struct {
	// PrettyIndent is the indent width of the `j` formatter.
	PrettyIndent int
	Table        TableOptions
}

// DefaultOptions returns the built-in formatter settings.
func DefaultOptions() Options {
	return Options{
		PrettyIndent: repr.DefaultIndent,
		Table:        DefaultTableOptions(),
	}
}

// NewRegistry returns a registry holding the stock named formatters.
func NewRegistry(opts Options) registry.Registry[Formatter] {
	reg := registry.New[Formatter]()
	registry.MustRegister[Formatter](reg, "a", Func(func(v resolver.Value, _ []string) string {
		return Array(v.Repr())
	}))
	registry.MustRegister[Formatter](reg, "c", Func(func(v resolver.Value, _ []string) string {
		return v.Repr()
	}))
	registry.MustRegister[Formatter](reg, "j", Func(func(v resolver.Value, _ []string) string {
		return repr.Pretty(v.Raw, opts.PrettyIndent)
	}))
	registry.MustRegister[Formatter](reg, "m", Func(func(v resolver.Value, _ []string) string {
		return Matrix(v.Repr())
	}))
	registry.MustRegister[Formatter](reg, "d", Func(func(v resolver.Value, _ []string) string {
		return Determinant(v.Repr())
	}))
	registry.MustRegister[Formatter](reg, "t", Func(func(v resolver.Value, args []string) string {
		return Table(v.Raw, args, opts.Table)
	}))
	return reg
}

// Apply formats v with the formatter registered under spec, falling back to
// Primitive for unregistered or empty specifiers.
func Apply(reg registry.Registry[Formatter], spec string, v resolver.Value, args []string) string {
	if spec != "" {
		if f, ok := reg.Lookup(spec); ok {
			return f.Format(v, args)
		}
	}
	return Primitive(v, spec)
}
