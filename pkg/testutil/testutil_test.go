// pkg/testutil/testutil_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test environment isolation and file fixtures

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsolate(t *testing.T) {
	t.Setenv("CIO_TABLE_BORDER", "double")
	t.Setenv("NO_COLOR", "1")

	env := Isolate(t)

	assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
	_, set := os.LookupEnv("CIO_TABLE_BORDER")
	assert.False(t, set)
	_, set = os.LookupEnv("NO_COLOR")
	assert.False(t, set)

	path := env.ConfigFile(t, "config.toml", "[table]\n")
	assert.Equal(t, filepath.Join(env.ConfigHome, "cio", "config.toml"), path)
	assert.Equal(t, "[table]\n", ReadFile(t, path))
}
