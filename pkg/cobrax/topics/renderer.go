package topics

// Renderer turns a topic file into terminal text. ext is the file
// extension including the dot.
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer writes topics verbatim.
type PlainRenderer struct{}

func (PlainRenderer) Render(content, _ string) string {
	return content
}
