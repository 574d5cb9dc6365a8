// Package style holds the terminal style vocabulary and turns lists of
// style names into ANSI SGR escape sequences.
//
// Names are looked up in the color table first and then in the modifier
// table. Unknown names are dropped without a diagnostic, so a list made only
// of unknown names resolves to the reset sequence.
package style

import (
	"strconv"
	"strings"
)

// Reset is the SGR sequence that clears every active attribute.
const Reset = "\x1b[0m"

// ANSICode builds the escape sequence for names, keeping their order.
func ANSICode(names []string) string {
	if len(names) == 0 {
		return Reset
	}

	codes := make([]string, 0, len(names))
	for _, name := range names {
		if code, ok := Code(name); ok {
			codes = append(codes, strconv.Itoa(code))
		}
	}

	if len(codes) == 0 {
		return Reset
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// ParseList splits a comma-joined style list and trims every term.
func ParseList(list string) []string {
	parts := strings.Split(list, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	return names
}

// Wrap surrounds text with the sequence for names and a trailing reset.
// An empty list leaves text untouched.
func Wrap(names []string, text string) string {
	if len(names) == 0 {
		return text
	}
	code := ANSICode(names)
	if code == Reset {
		return text
	}
	return code + text + Reset
}
