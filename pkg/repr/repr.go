// Package repr renders arbitrary Go values into the bracketed debug text
// that the structured formatters parse, and provides the quote-aware
// scanners used to read that text back.
//
// The grammar is small:
//
//	sequence  [a, b, c]
//	map       {"k": v, "l": w}     keys sorted
//	set       {"a", "b"}           maps with struct{} values
//	struct    Point{X: 1, Y: 2}
//	string    "text"               Go escaping
//	nil       nil
//	cycle     <cycle>              a reference back to an enclosing value
//
// Compact writes everything on one line; Pretty breaks every non-empty
// container over several indented lines with trailing commas.
package repr

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// DefaultIndent is the indent width used by Pretty when none is given.
const DefaultIndent = 4

// Compact returns the single-line debug representation of v.
func Compact(v any) string {
	return CompactValue(reflect.ValueOf(v))
}

// CompactValue is Compact for an already reflected value. It accepts values
// that cannot be converted back to an interface, such as unexported fields.
func CompactValue(v reflect.Value) string {
	var b strings.Builder
	o := out{b: &b}
	o.value(v)
	return b.String()
}

// Pretty returns the multi-line debug representation of v using indent
// spaces per level. A non-positive indent selects DefaultIndent.
func Pretty(v any, indent int) string {
	if indent <= 0 {
		indent = DefaultIndent
	}
	var b strings.Builder
	o := out{b: &b, pretty: true, indent: indent}
	o.value(reflect.ValueOf(v))
	return b.String()
}

// Cycle is written in place of a value that refers back to one of its
// enclosing values.
const Cycle = "<cycle>"

// scannerMeta are the characters the scanners give meaning to. Stringer
// output holding any of them is quoted inside containers.
const scannerMeta = `,[]{}()"\`

type out struct {
	b      *strings.Builder
	pretty bool
	indent int
	depth  int
	nested int
	path   map[visit]bool
}

// visit identifies a reference-like value on the current path.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func (o *out) write(s string) { o.b.WriteString(s) }

func (o *out) pad() {
	o.b.WriteString(strings.Repeat(" ", o.depth*o.indent))
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func (o *out) value(v reflect.Value) {
	if !v.IsValid() {
		o.write("nil")
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			o.write("nil")
			return
		}
	}

	if v.CanInterface() && v.Type().Implements(stringerType) && v.Kind() != reflect.Interface {
		o.stringer(v.Interface().(fmt.Stringer).String())
		return
	}

	if key, ok := reference(v); ok {
		if o.path[key] {
			o.write(Cycle)
			return
		}
		if o.path == nil {
			o.path = map[visit]bool{}
		}
		o.path[key] = true
		defer delete(o.path, key)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		o.value(v.Elem())
	case reflect.Bool:
		o.write(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		o.write(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		o.write(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		o.write(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		o.write(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.String:
		o.write(strconv.Quote(v.String()))
	case reflect.Slice:
		if v.IsNil() {
			o.write("[]")
			return
		}
		o.sequence(v)
	case reflect.Array:
		o.sequence(v)
	case reflect.Map:
		o.mapping(v)
	case reflect.Struct:
		o.structure(v)
	default:
		o.write(fmt.Sprintf("%v", v))
	}
}

func (o *out) stringer(s string) {
	if o.nested > 0 && strings.ContainsAny(s, scannerMeta) {
		s = strconv.Quote(s)
	}
	o.write(s)
}

// reference returns the path key of pointers, maps and non-empty slices.
func reference(v reflect.Value) (visit, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return visit{}, false
		}
		return visit{ptr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return visit{}, false
		}
		return visit{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}, true
	}
	return visit{}, false
}

func (o *out) sequence(v reflect.Value) {
	items := make([]reflect.Value, v.Len())
	for i := range items {
		items[i] = v.Index(i)
	}
	o.container("[", "]", len(items), func(i int) {
		o.value(items[i])
	})
}

func (o *out) mapping(v reflect.Value) {
	if v.IsNil() {
		o.write("{}")
		return
	}
	keys := SortedKeys(v)
	isSet := v.Type().Elem().Kind() == reflect.Struct && v.Type().Elem().NumField() == 0
	o.container("{", "}", len(keys), func(i int) {
		o.value(keys[i])
		if isSet {
			return
		}
		o.write(": ")
		o.value(v.MapIndex(keys[i]))
	})
}

func (o *out) structure(v reflect.Value) {
	t := v.Type()
	o.write(t.Name())
	o.container("{", "}", t.NumField(), func(i int) {
		o.write(t.Field(i).Name)
		o.write(": ")
		o.value(v.Field(i))
	})
}

// container writes n elements between open and close.
func (o *out) container(open, close string, n int, elem func(i int)) {
	o.write(open)
	if n == 0 {
		o.write(close)
		return
	}
	o.nested++
	defer func() { o.nested-- }()
	if !o.pretty {
		for i := 0; i < n; i++ {
			if i > 0 {
				o.write(", ")
			}
			elem(i)
		}
		o.write(close)
		return
	}

	o.write("\n")
	o.depth++
	for i := 0; i < n; i++ {
		o.pad()
		elem(i)
		o.write(",\n")
	}
	o.depth--
	o.pad()
	o.write(close)
}

// SortedKeys returns the keys of map value m in a stable order: numbers
// numerically, strings lexically, anything else by its compact text.
func SortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	return keys
}

func lessKey(a, b reflect.Value) bool {
	a, b = unwrap(a), unwrap(b)
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		}
	}
	return CompactValue(a) < CompactValue(b)
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
