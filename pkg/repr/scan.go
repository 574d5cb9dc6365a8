package repr

import "strings"

// quoteState tracks whether a scan is inside a double-quoted string.
// Backslash escapes are honoured inside quotes.
type quoteState struct {
	in      bool
	escaped bool
}

// step consumes c and reports whether it is structural, i.e. outside any
// quoted text.
func (q *quoteState) step(c byte) bool {
	if q.in {
		switch {
		case q.escaped:
			q.escaped = false
		case c == '\\':
			q.escaped = true
		case c == '"':
			q.in = false
		}
		return false
	}
	if c == '"' {
		q.in = true
		return false
	}
	return true
}

// Depth returns the deepest square-bracket nesting in s, ignoring brackets
// inside quoted strings.
func Depth(s string) int {
	var q quoteState
	depth, max := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !q.step(c) {
			continue
		}
		switch c {
		case '[':
			depth++
			if depth > max {
				max = depth
			}
		case ']':
			depth--
		}
	}
	return max
}

// Elements splits a sequence representation `[a, b, c]` into its trimmed
// top-level elements. It reports false when s is not a single balanced
// sequence.
func Elements(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	if closing(s, 0) != len(s)-1 {
		return nil, false
	}
	return splitTopLevel(s[1 : len(s)-1]), true
}

// Grid parses a sequence of sequences into rows of element strings. It
// reports false when s is not a sequence or when any top-level element is
// not itself a sequence.
func Grid(s string) ([][]string, bool) {
	rows, ok := Elements(s)
	if !ok {
		return nil, false
	}
	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells, ok := Elements(row)
		if !ok {
			return nil, false
		}
		grid = append(grid, cells)
	}
	return grid, true
}

// closing returns the index of the bracket closing the one at open, or -1.
func closing(s string, open int) int {
	var q quoteState
	level := 0
	for i := open; i < len(s); i++ {
		c := s[i]
		if !q.step(c) {
			continue
		}
		switch c {
		case '[', '{', '(':
			level++
		case ']', '}', ')':
			level--
			if level == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits at commas that sit outside quotes and outside any
// bracket, brace or parenthesis.
func splitTopLevel(content string) []string {
	if strings.TrimSpace(content) == "" {
		return []string{}
	}
	var q quoteState
	var parts []string
	level, start := 0, 0
	for i := 0; i < len(content); i++ {
		c := content[i]
		if !q.step(c) {
			continue
		}
		switch c {
		case '[', '{', '(':
			level++
		case ']', '}', ')':
			level--
		case ',':
			if level == 0 {
				parts = append(parts, strings.TrimSpace(content[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(content[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}
