package formatters

import (
	"strings"

	"github.com/arthur-debert/cio/pkg/repr"
)

const arrayIndent = "  "

// Array lays out a nested sequence one element per line. Sequences nested
// less than two levels deep, and anything that is not a sequence, are
// returned unchanged.
func Array(text string) string {
	if !strings.HasPrefix(text, "[") || repr.Depth(text) < 2 {
		return text
	}
	return expand(text, 0)
}

// expand breaks a sequence at its top-level elements, recursing into
// elements that are themselves nested at least two levels.
func expand(text string, level int) string {
	elems, ok := repr.Elements(text)
	if !ok || repr.Depth(text) < 2 {
		return text
	}

	inner := strings.Repeat(arrayIndent, level+1)
	var b strings.Builder
	b.WriteString("[\n")
	for i, e := range elems {
		b.WriteString(inner)
		b.WriteString(expand(e, level+1))
		if i < len(elems)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(arrayIndent, level))
	b.WriteByte(']')
	return b.String()
}
