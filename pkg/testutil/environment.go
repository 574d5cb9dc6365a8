// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate tests from the user's configuration and environment

package testutil

import (
	"os"
	"strings"
	"testing"
)

// EnvPrefix matches the prefix read by the config loader.
const EnvPrefix = "CIO_"

// Env describes the isolated directories of one test.
type Env struct {
	ConfigHome string
	StateHome  string
}

// ConfigFile writes content to cio's user config file and returns its path.
func (e Env) ConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, e.ConfigHome, "cio/"+name, content)
}

// Isolate points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh temp
// directories and removes every CIO_ variable and NO_COLOR for the
// duration of the test.
func Isolate(t *testing.T) Env {
	t.Helper()

	env := Env{ConfigHome: t.TempDir(), StateHome: t.TempDir()}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix) || key == "NO_COLOR" {
			Unsetenv(t, key)
		}
	}
	return env
}

// Unsetenv removes an environment variable for the duration of the test.
func Unsetenv(t *testing.T, key string) {
	t.Helper()

	// t.Setenv registers the restore
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Failed to unset environment variable %s: %v", key, err)
	}
}
