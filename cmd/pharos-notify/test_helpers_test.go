package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"pharosnotify/internal/config"
	"pharosnotify/internal/testsupport"
)

type cliTestEnv struct {
	server     *testsupport.FakePharos
	cfg        *config.Config
	configPath string
}

// setupCLITestEnv starts a fake Pharos server and writes a config file
// pointing at it, with opts applied. The Pharos environment variables start
// out empty.
func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	testsupport.ClearEnv(t)
	server := testsupport.NewFakePharos(t)
	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithServer(server)}, opts...)...)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{server: server, cfg: cfg, configPath: configPath}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func requirePaths(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("request paths = %v, want %v", got, want)
	}
}
