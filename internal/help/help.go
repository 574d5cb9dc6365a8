// Package help embeds the markdown help topics shipped with the cio
// command.
package help

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var embedded embed.FS

// Topics returns the topic files rooted at the topics directory.
func Topics() fs.FS {
	sub, err := fs.Sub(embedded, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
