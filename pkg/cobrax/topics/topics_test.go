// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: fstest.MapFS, cobra
// PURPOSE: Test topic discovery, lookup and the replacement help command

package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"syntax.md":            {Data: []byte("# Syntax\n\nStyle markers look like @(red).")},
		"styles.txt":           {Data: []byte("Colors and modifiers")},
		"option-no-newline.md": {Data: []byte("Suppresses the newline")},
		"nested/config.md":     {Data: []byte("# Config")},
		"ignore.json":          {Data: []byte("{}")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	tm, err := New(testFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"config", "option-no-newline", "styles", "syntax"}, tm.ListTopics())

	tests := []struct {
		name   string
		exists bool
	}{
		{"syntax", true},
		{"config", true},
		{"--no-newline", true},
		{"no-newline", true},
		{"ignore", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tm.GetTopic(tt.name)
			assert.Equal(t, tt.exists, ok)
		})
	}
}

func TestTopicManager_CustomExtensions(t *testing.T) {
	tm, err := New(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ignore"}, tm.ListTopics())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + format
}

func TestTopicManager_WriteTopic(t *testing.T) {
	tm, err := New(testFS(), Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tm.WriteTopic(&buf, "styles"))
	assert.Equal(t, "COLORS AND MODIFIERS.txt", buf.String())

	assert.Error(t, tm.WriteTopic(&buf, "nope"))
}

func TestGlamourRenderer_PlainText(t *testing.T) {
	r := NewGlamourRenderer(false)
	assert.Equal(t, "notty", r.Style)
	assert.Equal(t, "as is", r.Render("as is", ".txt"))

	out := r.Render("# Title\n\nbody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
	assert.NotContains(t, out, "\x1b[")

	upper := r.Render("# Title", ".MARKDOWN")
	assert.Contains(t, upper, "Title")
	assert.NotEqual(t, "# Title", upper)
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# Title", PlainRenderer{}.Render("# Title", ".md"))
}

func TestInstall(t *testing.T) {
	root := &cobra.Command{Use: "cio"}
	root.AddCommand(&cobra.Command{Use: "print", Short: "Render a template", Run: func(*cobra.Command, []string) {}})

	tm, err := New(testFS(), Options{})
	require.NoError(t, err)
	tm.Install(root)

	run := func(args ...string) string {
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return out.String()
	}

	t.Run("topic", func(t *testing.T) {
		assert.Contains(t, run("help", "syntax"), "Style markers look like @(red).")
	})

	t.Run("index", func(t *testing.T) {
		out := run("help", "topics")
		assert.Contains(t, out, "General topics:")
		assert.Contains(t, out, "  syntax")
		assert.Contains(t, out, "  --no-newline")
		assert.Contains(t, out, "'cio help <topic>'")
	})

	t.Run("command help still works", func(t *testing.T) {
		assert.Contains(t, run("help", "print"), "Render a template")
	})
}
