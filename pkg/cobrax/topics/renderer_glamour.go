package topics

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer draws markdown topics with glamour. Other topic files
// pass through untouched.
type GlamourRenderer struct {
	Style string
	Width int

	once sync.Once
	term *glamour.TermRenderer
}

// NewGlamourRenderer returns a renderer for a terminal with or without
// color. The notty style emits no escape sequences.
func NewGlamourRenderer(color bool) *GlamourRenderer {
	if color {
		return &GlamourRenderer{Style: "auto"}
	}
	return &GlamourRenderer{Style: "notty"}
}

func (r *GlamourRenderer) Render(content, ext string) string {
	if !isMarkdown(ext) {
		return content
	}

	r.once.Do(r.init)
	if r.term == nil {
		return content
	}
	out, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (r *GlamourRenderer) init() {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		opts = []glamour.TermRendererOption{glamour.WithStandardStyle(r.Style)}
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	// nil term means plain passthrough
	r.term, _ = glamour.NewTermRenderer(opts...)
}

func isMarkdown(ext string) bool {
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		return true
	}
	return false
}
