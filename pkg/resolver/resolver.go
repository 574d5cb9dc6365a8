// Package resolver supplies the runtime values that template placeholders
// refer to.
//
// A Resolver turns the text between `{` and `}` (or a style variable name)
// into a Value. Map is the stock implementation: bare identifiers are looked
// up directly and anything else is evaluated as an expression against the
// map, so `{age * 12}`, `{upper(name)}` and `{user.Name}` all work.
package resolver

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/arthur-debert/cio/pkg/lexer"
	"github.com/arthur-debert/cio/pkg/repr"
)

// Value is a resolved runtime value.
type Value struct {
	Raw any
}

// ValueOf wraps raw.
func ValueOf(raw any) Value {
	return Value{Raw: raw}
}

// Repr returns the compact debug text of the value. It is built on each
// call, so callers that only need Text never walk the value.
func (v Value) Repr() string {
	return repr.Compact(v.Raw)
}

// Text returns the plain display text of the value.
func (v Value) Text() string {
	return fmt.Sprintf("%v", v.Raw)
}

// Resolver resolves a variable name or expression.
type Resolver interface {
	Resolve(expr string) (Value, error)
}

// Func adapts a plain function to a Resolver.
type Func func(expr string) (any, error)

// Resolve implements Resolver.
func (f Func) Resolve(expr string) (Value, error) {
	raw, err := f(expr)
	if err != nil {
		return Value{}, err
	}
	return ValueOf(raw), nil
}

// Map resolves against a set of named variables.
type Map map[string]any

// Resolve implements Resolver.
func (m Map) Resolve(code string) (Value, error) {
	if lexer.IsIdentifier(code) {
		raw, ok := m[code]
		if !ok {
			return Value{}, errors.Newf(errors.ErrUndefinedVariable, "variable %q is not defined", code).
				WithDetail("expr", code)
		}
		return ValueOf(raw), nil
	}

	raw, err := expr.Eval(code, map[string]any(m))
	if err != nil {
		return Value{}, errors.Wrapf(err, errors.ErrEvaluate, "cannot evaluate %q", code).
			WithDetail("expr", code)
	}
	return ValueOf(raw), nil
}
