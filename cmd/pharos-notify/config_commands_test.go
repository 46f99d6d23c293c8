package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, "config", "validate", "-c", env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Options: fixity, restore")
	requireContains(t, out, "API key set: yes")

	target := filepath.Join(t.TempDir(), "pharos-notify.toml")
	out, _, err = runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigInitCreatesMissingDirectories(t *testing.T) {
	setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")

	out, _, err := runCLI(t, "config", "init", "-p", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, target)
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	requireContains(t, string(data), "[api]")
	if info, err := os.Stat(target); err != nil || info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 sample file, got %v (%v)", info, err)
	}
}

func TestConfigValidateReportsMissingHost(t *testing.T) {
	setupCLITestEnv(t)

	_, _, err := runCLI(t, "config", "validate", "-u", "admin", "-k", "key")
	if err == nil {
		t.Fatal("expected validation error without host")
	}
	requireContains(t, err.Error(), "api.host")
}
