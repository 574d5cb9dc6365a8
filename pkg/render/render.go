// Package render turns parsed templates into styled terminal text.
//
// A Renderer walks the token stream of a template, resolving placeholders
// through a resolver.Resolver, formatting them through the formatter
// registry and translating style markers into ANSI sequences. The finished
// line is handed to a Sink in one piece.
//
// Rendering is lenient. Unknown style names are dropped, placeholders that
// cannot be resolved are written back as their marker text, and the only
// error a caller sees is a failing sink.
package render

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/formatters"
	"github.com/arthur-debert/cio/pkg/lexer"
	"github.com/arthur-debert/cio/pkg/registry"
	"github.com/arthur-debert/cio/pkg/resolver"
	"github.com/arthur-debert/cio/pkg/style"
	"github.com/rs/zerolog"
)

// separatorPattern matches a trailing `$(content)` directive.
var separatorPattern = regexp.MustCompile(`\$\(([^)]*)\)$`)

// Renderer renders templates against one resolver and writes them to one
// sink. It holds no per-call state and may be shared.
type Renderer struct {
	resolver   resolver.Resolver
	sink       Sink
	formatters registry.Registry[formatters.Formatter]
	log        zerolog.Logger
}

type settings struct {
	log        zerolog.Logger
	formatOpts formatters.Options
	extra      map[string]formatters.Formatter
	order      []string
}

// Option configures a Renderer.
type Option func(*settings)

// WithLogger sets the logger used for resolution warnings and tracing.
// Renderers are silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithFormatterOptions tunes the stock formatters.
func WithFormatterOptions(opts formatters.Options) Option {
	return func(s *settings) {
		s.formatOpts = opts
	}
}

// WithFormatter registers f under name, replacing a stock formatter of
// the same name.
func WithFormatter(name string, f formatters.Formatter) Option {
	return func(s *settings) {
		if _, ok := s.extra[name]; !ok {
			s.order = append(s.order, name)
		}
		s.extra[name] = f
	}
}

// New creates a Renderer writing to sink.
func New(res resolver.Resolver, sink Sink, opts ...Option) *Renderer {
	s := &settings{
		log:        zerolog.Nop(),
		formatOpts: formatters.DefaultOptions(),
		extra:      map[string]formatters.Formatter{},
	}
	for _, opt := range opts {
		opt(s)
	}

	reg := formatters.NewRegistry(s.formatOpts)
	for _, name := range s.order {
		_ = reg.Replace(name, s.extra[name])
	}

	return &Renderer{
		resolver:   res,
		sink:       sink,
		formatters: reg,
		log:        s.log,
	}
}

// Formatters returns the registry consulted for `{expr:spec}` markers.
// Formatters registered on it apply to later calls.
func (r *Renderer) Formatters() registry.Registry[formatters.Formatter] {
	return r.formatters
}

// Print renders template and emits it. A trailing `$(content)` directive
// suppresses the newline and emits content afterwards: a bare identifier
// is replaced by its value, `""` emits nothing, and anything else is
// written literally.
func (r *Renderer) Print(template string) error {
	return r.print(template, false)
}

// PrintInline is Print without the trailing newline.
func (r *Renderer) PrintInline(template string) error {
	return r.print(template, true)
}

func (r *Renderer) print(template string, noNewline bool) error {
	loc := separatorPattern.FindStringSubmatchIndex(template)
	if loc == nil {
		return r.Render(lexer.Parse(template).Tokens, noNewline)
	}

	body := template[:loc[0]]
	content := template[loc[2]:loc[3]]
	if err := r.Render(lexer.Parse(body).Tokens, true); err != nil {
		return err
	}

	sep := r.separator(content)
	if sep == "" {
		return nil
	}
	return r.emit(sep, false)
}

// Sprint renders template to a string without emitting it. Separator
// directives are not interpreted.
func (r *Renderer) Sprint(template string) string {
	return r.assemble(lexer.Parse(template).Tokens)
}

// Render assembles tokens and emits the result, followed by a newline
// unless noNewline is set.
func (r *Renderer) Render(tokens []lexer.Token, noNewline bool) error {
	return r.emit(r.assemble(tokens), !noNewline)
}

func (r *Renderer) emit(s string, newline bool) error {
	if err := r.sink.Emit(s, newline); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write rendered output")
	}
	return nil
}

// assemble builds the full output for tokens. The style state is flat:
// every change resets before applying, and the output always ends with a
// reset.
func (r *Renderer) assemble(tokens []lexer.Token) string {
	r.log.Trace().Int("tokens", len(tokens)).Msg("rendering template")

	var b strings.Builder
	for _, tok := range tokens {
		switch t := tok.(type) {
		case lexer.StyleChange:
			b.WriteString(style.Reset)
			b.WriteString(style.ANSICode(t.Specs))
		case lexer.StyleVariable:
			b.WriteString(style.Reset)
			if names, ok := r.styleNames(t.Name); ok {
				b.WriteString(style.ANSICode(names))
			}
		case lexer.StyleReset:
			b.WriteString(style.Reset)
		case lexer.Text:
			b.WriteString(t.Content)
		case lexer.Variable:
			b.WriteString(r.variable(t))
		}
	}
	b.WriteString(style.Reset)
	return b.String()
}

func (r *Renderer) variable(t lexer.Variable) string {
	v, err := r.resolver.Resolve(t.Expr)
	if err != nil {
		r.log.Warn().Err(err).Str("expr", t.Expr).Msg("unresolved placeholder")
		return t.String()
	}
	return formatters.Apply(r.formatters, t.Format, v, t.Args)
}

// styleNames resolves a style variable into a list of style names. Slices
// hold one name per element; any other value is read as a comma-joined
// list.
func (r *Renderer) styleNames(name string) ([]string, bool) {
	v, err := r.resolver.Resolve(name)
	if err != nil {
		r.log.Warn().Err(err).Str("name", name).Msg("unresolved style variable")
		return nil, false
	}
	switch raw := v.Raw.(type) {
	case []string:
		return raw, true
	case []any:
		names := make([]string, len(raw))
		for i, n := range raw {
			names[i] = fmt.Sprint(n)
		}
		return names, true
	}
	return style.ParseList(v.Text()), true
}

func (r *Renderer) separator(content string) string {
	if content == `""` {
		return ""
	}
	if !lexer.IsIdentifier(content) {
		return content
	}
	v, err := r.resolver.Resolve(content)
	if err != nil {
		r.log.Warn().Err(err).Str("name", content).Msg("unresolved separator, writing it literally")
		return content
	}
	return v.Text()
}

// Println renders template against vars and prints it to standard output,
// with color when standard output is a color terminal.
func Println(template string, vars map[string]any) error {
	return New(resolver.Map(vars), NewStdoutSink(DetectColor(os.Stdout))).Print(template)
}
