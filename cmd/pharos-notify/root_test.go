package main

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"pharosnotify/internal/config"
	"pharosnotify/internal/testsupport"
)

func TestDefaultOptionsTriggerFixityAndRestore(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, "-c", env.configPath)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr)
	}
	requirePaths(t, env.server.Paths(),
		"/api/v2/notifications/failed_fixity",
		"/api/v2/notifications/successful_restoration",
	)
	requireContains(t, stderr, "/notifications/failed_fixity: 200")
	requireContains(t, stderr, "/notifications/successful_restoration: 200")
	if lines := strings.Count(stderr, "\n"); lines != 2 {
		t.Fatalf("expected one log line per response, got %d:\n%s", lines, stderr)
	}
}

func TestEnvironmentUserUsedWhenFlagOmitted(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv(config.EnvAPIUser, "env-user@example.org")

	if _, stderr, err := runCLI(t, "-c", env.configPath, "-o", "snapshot"); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr)
	}
	reqs := env.server.Requests()
	if len(reqs) != 1 || reqs[0].User != "env-user@example.org" {
		t.Fatalf("expected X-API-USER from environment, got %+v", reqs)
	}

	if _, stderr, err := runCLI(t, "-c", env.configPath, "-o", "snapshot", "-u", "flag-user", "-k", "flag-key"); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr)
	}
	reqs = env.server.Requests()
	if reqs[1].User != "flag-user" || reqs[1].Key != "flag-key" {
		t.Fatalf("expected flags to win over environment, got %+v", reqs[1])
	}
}

func TestOptionsKeepCommandLineOrder(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, stderr, err := runCLI(t, "-c", env.configPath, "-o", "snapshot", "deletion", "-o", "fixity,snapshot", "restore"); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr)
	}
	requirePaths(t, env.server.Paths(),
		"/api/v2/group_snapshot",
		"/api/v2/notifications/deletion",
		"/api/v2/notifications/failed_fixity",
		"/api/v2/group_snapshot",
		"/api/v2/notifications/successful_restoration",
	)
}

func TestOptionWordsAfterOtherFlagsStayInPlace(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, stderr, err := runCLI(t, "-o", "deletion", "-c", env.configPath, "snapshot", "-o", "fixity"); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr)
	}
	requirePaths(t, env.server.Paths(),
		"/api/v2/notifications/deletion",
		"/api/v2/group_snapshot",
		"/api/v2/notifications/failed_fixity",
	)
}

func TestBareWordsWithoutOptFlagRejected(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, args := range [][]string{
		{"-c", env.configPath, "deletion"},
		{"-c", env.configPath, "deletion", "-o", "fixity"},
	} {
		_, stderr, err := runCLI(t, args...)
		if err == nil {
			t.Fatalf("%v: expected unrecognized arguments error", args)
		}
		if exitCode(err) != exitUsage {
			t.Fatalf("%v: expected usage exit code, got %d (%v)", args, exitCode(err), err)
		}
		requireContains(t, err.Error(), "unrecognized arguments: deletion")
		requireContains(t, stderr, "Usage:")
	}
	if n := len(env.server.Requests()); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestConfigFileOptionsUsedWhenFlagOmitted(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithOptions("deletion", "snapshot"))

	if _, stderr, err := runCLI(t, "-c", env.configPath); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr)
	}
	requirePaths(t, env.server.Paths(),
		"/api/v2/notifications/deletion",
		"/api/v2/group_snapshot",
	)
}

func TestInvalidOptionRejectedBeforeAnyRequest(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, "-c", env.configPath, "-o", "fixity", "-o", "ingest")
	if err == nil {
		t.Fatal("expected invalid option error")
	}
	if exitCode(err) != exitUsage {
		t.Fatalf("expected usage exit code, got %d (%v)", exitCode(err), err)
	}
	requireContains(t, err.Error(), `"ingest"`)
	requireContains(t, stderr, "Usage:")
	if n := len(env.server.Requests()); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestMissingCredentialsIsUsageError(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, "-c", env.configPath+".missing", "-H", "repo.example.org", "-u", "admin")
	if err == nil {
		t.Fatal("expected missing key error")
	}
	if exitCode(err) != exitUsage {
		t.Fatalf("expected usage exit code, got %d", exitCode(err))
	}
	requireContains(t, err.Error(), config.EnvAPIKey)
}

func TestNonSuccessResponseLoggedAndRunContinues(t *testing.T) {
	env := setupCLITestEnv(t)
	env.server.Respond("/api/v2/notifications/failed_fixity", http.StatusInternalServerError, "error")

	_, stderr, err := runCLI(t, "-c", env.configPath)
	if err != nil {
		t.Fatalf("expected non-2xx to be logged, not returned: %v", err)
	}
	requireContains(t, stderr, "/notifications/failed_fixity: 500 error")
	requirePaths(t, env.server.Paths(),
		"/api/v2/notifications/failed_fixity",
		"/api/v2/notifications/successful_restoration",
	)
}

func TestTransportErrorFailsRun(t *testing.T) {
	env := setupCLITestEnv(t)
	env.server.Close()

	_, _, err := runCLI(t, "-c", env.configPath)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var usage *usageError
	if errors.As(err, &usage) {
		t.Fatalf("transport error must not be a usage error: %v", err)
	}
	if exitCode(err) != exitFailure {
		t.Fatalf("expected exit code %d, got %d", exitFailure, exitCode(err))
	}
}

func TestDryRunPrintsPlanWithoutRequests(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, "-c", env.configPath, "--dry-run", "-o", "fixity,deletion", "--since", "2024-01-02")
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	requireContains(t, stdout, "GET http://"+env.cfg.API.Host+"/api/v2/notifications/failed_fixity?since=2024-01-02T00%3A00%3A00Z")
	requireContains(t, stdout, "GET http://"+env.cfg.API.Host+"/api/v2/notifications/deletion\n")
	if n := len(env.server.Requests()); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestJSONLogFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, "-c", env.configPath, "-o", "snapshot", "--log-format", "json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, stderr, `"msg":"/group_snapshot: 200`)
	requireContains(t, stderr, `"status":200`)
	requireContains(t, stderr, `"run_id":`)
}
