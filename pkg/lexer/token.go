package lexer

import "strings"

// Token is one element of a parsed template. The concrete types are
// StyleChange, StyleReset, StyleVariable, Text and Variable.
type Token interface {
	token()
}

// StyleChange switches to a literal list of style names, kept as written.
type StyleChange struct {
	Specs []string
}

// StyleReset clears the active style.
type StyleReset struct{}

// StyleVariable switches to the style list held by a runtime variable.
type StyleVariable struct {
	Name string
}

// Text is a verbatim slice of the template.
type Text struct {
	Content string
}

// Variable is a placeholder whose value is resolved and formatted at
// render time. Format is empty when no specifier was given and Args is nil
// when the specifier carried no argument list.
type Variable struct {
	Expr   string
	Format string
	Args   []string
}

func (StyleChange) token()   {}
func (StyleReset) token()    {}
func (StyleVariable) token() {}
func (Text) token()          {}
func (Variable) token()      {}

// String rebuilds the marker text as it would appear in a template.
func (v Variable) String() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(v.Expr)
	if v.Format != "" {
		b.WriteByte(':')
		b.WriteString(v.Format)
		if v.Args != nil {
			b.WriteByte('(')
			b.WriteString(strings.Join(v.Args, ", "))
			b.WriteByte(')')
		}
	}
	b.WriteByte('}')
	return b.String()
}
