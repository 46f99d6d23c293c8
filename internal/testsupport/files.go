package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"pharosnotify/internal/config"
)

// WriteConfig encodes cfg as TOML at path, creating parent directories.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ClearEnv unsets the Pharos environment variables and points HOME at a
// temp dir so no user config leaks into a test.
func ClearEnv(t testing.TB) {
	t.Helper()

	for _, name := range []string{config.EnvHost, config.EnvAPIUser, config.EnvAPIKey, config.EnvLegacyToken} {
		t.Setenv(name, "")
	}
	t.Setenv("HOME", t.TempDir())
}
