package formatters

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/cio/pkg/repr"
	"github.com/arthur-debert/cio/pkg/resolver"
	"github.com/mattn/go-runewidth"
)

// Spec is a parsed primitive format specifier:
//
//	[[fill]align][sign][#][0][width][.precision][type]
//
// align is one of < ^ >, sign is + or -, and type is empty (display), ?
// (debug text), x, X, o, b, e or E.
type Spec struct {
	Fill      rune
	Align     byte
	Plus      bool
	Alternate bool
	Zero      bool
	Width     int
	Precision int
	Type      string
}

// ParseSpec parses a primitive format specifier. Precision is -1 when not
// given.
func ParseSpec(s string) (Spec, bool) {
	spec := Spec{Fill: ' ', Precision: -1}
	rest := s

	if r, size := utf8.DecodeRuneInString(rest); size > 0 && len(rest) > size && isAlign(rest[size]) {
		spec.Fill, spec.Align = r, rest[size]
		rest = rest[size+1:]
	} else if rest != "" && isAlign(rest[0]) {
		spec.Align = rest[0]
		rest = rest[1:]
	}

	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		spec.Plus = rest[0] == '+'
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '#' {
		spec.Alternate = true
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '0' {
		spec.Zero = true
		rest = rest[1:]
	}

	var digits string
	digits, rest = leadingDigits(rest)
	if digits != "" {
		spec.Width, _ = strconv.Atoi(digits)
	}
	if rest != "" && rest[0] == '.' {
		digits, rest = leadingDigits(rest[1:])
		if digits == "" {
			return Spec{}, false
		}
		spec.Precision, _ = strconv.Atoi(digits)
	}

	switch rest {
	case "", "?", "x", "X", "o", "b", "e", "E":
		spec.Type = rest
	default:
		return Spec{}, false
	}
	return spec, true
}

// Primitive formats v according to spec. A spec starting with % is used as
// a Go fmt format string. An empty or unparseable spec prints the value
// with %v.
func Primitive(v resolver.Value, spec string) string {
	if strings.HasPrefix(spec, "%") {
		return fmt.Sprintf(spec, v.Raw)
	}
	s, ok := ParseSpec(spec)
	if !ok {
		return v.Text()
	}
	return s.Format(v)
}

// Format applies the specifier to v.
func (s Spec) Format(v resolver.Value) string {
	rv := reflect.ValueOf(v.Raw)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && !rv.IsNil() {
		rv = rv.Elem()
	}

	numeric := isNumber(rv)
	body := s.body(v, rv)

	sign := ""
	if numeric {
		if strings.HasPrefix(body, "-") {
			sign, body = "-", body[1:]
		} else if s.Plus {
			sign = "+"
		}
	}

	prefix := ""
	if s.Alternate && isInteger(rv) {
		switch s.Type {
		case "x", "X":
			prefix = "0x"
		case "o":
			prefix = "0o"
		case "b":
			prefix = "0b"
		}
	}

	if s.Zero && numeric {
		digits := s.Width - len(sign) - len(prefix) - runewidth.StringWidth(body)
		if digits > 0 {
			body = strings.Repeat("0", digits) + body
		}
		return sign + prefix + body
	}

	return s.pad(sign+prefix+body, numeric)
}

func (s Spec) body(v resolver.Value, rv reflect.Value) string {
	switch s.Type {
	case "?":
		if s.Precision >= 0 && isFloat(rv) {
			return strconv.FormatFloat(rv.Float(), 'f', s.Precision, 64)
		}
		return v.Repr()
	case "x", "X", "o", "b":
		if !isInteger(rv) {
			return v.Text()
		}
		base := map[string]int{"x": 16, "X": 16, "o": 8, "b": 2}[s.Type]
		out := formatInteger(rv, base)
		if s.Type == "X" {
			out = strings.ToUpper(out)
		}
		return out
	case "e", "E":
		if !isNumber(rv) {
			return v.Text()
		}
		out := strconv.FormatFloat(toFloat(rv), 'e', s.Precision, 64)
		if s.Type == "E" {
			out = strings.ToUpper(out)
		}
		return out
	}

	switch {
	case isFloat(rv) && s.Precision >= 0:
		return strconv.FormatFloat(rv.Float(), 'f', s.Precision, 64)
	case rv.IsValid() && rv.Kind() == reflect.String && s.Precision >= 0:
		return truncate(rv.String(), s.Precision)
	case rv.IsValid() && isComposite(rv) && !implementsStringer(v.Raw):
		return repr.Compact(v.Raw)
	}
	return v.Text()
}

// pad fills up to Width using the fill rune. Numbers align right and
// everything else aligns left unless an alignment was given.
func (s Spec) pad(text string, numeric bool) string {
	gap := s.Width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	align := s.Align
	if align == 0 {
		align = '<'
		if numeric {
			align = '>'
		}
	}
	fill := string(s.Fill)
	switch align {
	case '>':
		return strings.Repeat(fill, gap) + text
	case '^':
		left := gap / 2
		return strings.Repeat(fill, left) + text + strings.Repeat(fill, gap-left)
	default:
		return text + strings.Repeat(fill, gap)
	}
}

func isAlign(c byte) bool {
	return c == '<' || c == '^' || c == '>'
}

func leadingDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func formatInteger(rv reflect.Value, base int) string {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), base)
	}
	return strconv.FormatInt(rv.Int(), base)
}

func toFloat(rv reflect.Value) float64 {
	switch {
	case isFloat(rv):
		return rv.Float()
	case rv.CanInt():
		return float64(rv.Int())
	default:
		return float64(rv.Uint())
	}
}

func isInteger(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64)
}

func isNumber(rv reflect.Value) bool {
	return isInteger(rv) || isFloat(rv)
}

func isComposite(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return true
	}
	return false
}

func implementsStringer(raw any) bool {
	_, ok := raw.(fmt.Stringer)
	return ok
}
