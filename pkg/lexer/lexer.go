// Package lexer splits a cio template into tokens.
//
// Two marker families are scanned independently: style markers `@(...)` and
// variable markers `{...}`. Their matches are merged by offset and the text
// around them becomes Text tokens. Nothing here fails: a marker that does
// not match its pattern is left in place as literal text.
//
// Style marker content is classified in a fixed order:
//
//	@()           reset
//	@({name})     style list read from the runtime value of name
//	@(red, bold)  literal list, chosen when any term is a known name
//	@(name)       style list read from the runtime value of name
package lexer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/cio/pkg/style"
)

var (
	styleMarker    = regexp.MustCompile(`@\(([^)]*)\)`)
	variableMarker = regexp.MustCompile(`\{([^{}]+?)(?::([^{}]+))?\}`)
	formatWithArgs = regexp.MustCompile(`^([^()]*)\((.*)\)$`)
	identifier     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Template is the result of parsing a template string.
type Template struct {
	Source string
	Tokens []Token
	// Identifiers lists the bare identifiers the template references,
	// sorted and without duplicates.
	Identifiers []string
}

type marker struct {
	start, end int
	tok        Token
}

type span struct {
	start, end int
}

// IsIdentifier reports whether s is a bare identifier.
func IsIdentifier(s string) bool {
	return identifier.MatchString(s)
}

// Parse tokenizes src.
func Parse(src string) *Template {
	used := make(map[string]struct{})
	var markers []marker
	var interpolated []span

	for _, loc := range styleMarker.FindAllStringSubmatchIndex(src, -1) {
		content := src[loc[2]:loc[3]]
		tok, name, isInterp := classifyStyle(content)
		if isInterp {
			used[name] = struct{}{}
			interpolated = append(interpolated, span{loc[0], loc[1]})
		}
		markers = append(markers, marker{start: loc[0], end: loc[1], tok: tok})
	}

	for _, loc := range variableMarker.FindAllStringSubmatchIndex(src, -1) {
		if within(interpolated, loc[0], loc[1]) {
			continue
		}
		v := Variable{Expr: src[loc[2]:loc[3]]}
		if loc[4] >= 0 {
			v.Format, v.Args = splitFormat(src[loc[4]:loc[5]])
		}
		if IsIdentifier(v.Expr) {
			used[v.Expr] = struct{}{}
		}
		markers = append(markers, marker{start: loc[0], end: loc[1], tok: v})
	}

	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].start < markers[j].start
	})

	tmpl := &Template{Source: src}
	last := 0
	for _, m := range markers {
		if m.start < last {
			// A variable marker inside a literal style list; the style
			// marker already covers it.
			continue
		}
		if m.start > last {
			tmpl.Tokens = append(tmpl.Tokens, Text{Content: src[last:m.start]})
		}
		tmpl.Tokens = append(tmpl.Tokens, m.tok)
		last = m.end
	}
	if last < len(src) {
		tmpl.Tokens = append(tmpl.Tokens, Text{Content: src[last:]})
	}

	tmpl.Identifiers = make([]string, 0, len(used))
	for name := range used {
		tmpl.Identifiers = append(tmpl.Identifiers, name)
	}
	sort.Strings(tmpl.Identifiers)
	return tmpl
}

// classifyStyle decides what a style marker's content means. The returned
// name is set for the interpolation form only.
func classifyStyle(content string) (tok Token, name string, interpolated bool) {
	if content == "" {
		return StyleReset{}, "", false
	}

	trimmed := strings.TrimSpace(content)
	if inner, ok := braced(trimmed); ok {
		return StyleVariable{Name: inner}, inner, true
	}

	terms := style.ParseList(content)
	for _, term := range terms {
		if style.IsKnown(term) {
			return StyleChange{Specs: terms}, "", false
		}
	}

	return StyleVariable{Name: trimmed}, "", false
}

// braced returns the inside of s when s is exactly one `{...}` pair.
func braced(s string) (string, bool) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return "", false
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" || strings.ContainsAny(inner, "{}") {
		return "", false
	}
	return inner, true
}

// splitFormat separates `t(Name, Age)` into the specifier and its
// arguments. A specifier without parentheses has nil args.
func splitFormat(spec string) (string, []string) {
	m := formatWithArgs.FindStringSubmatch(spec)
	if m == nil {
		return spec, nil
	}
	args := []string{}
	if strings.TrimSpace(m[2]) != "" {
		for _, a := range strings.Split(m[2], ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}
	return m[1], args
}

func within(spans []span, start, end int) bool {
	for _, s := range spans {
		if start >= s.start && end <= s.end {
			return true
		}
	}
	return false
}
