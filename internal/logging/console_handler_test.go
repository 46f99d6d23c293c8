package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerColorizesLevel(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, level, false, true))

	logger.Error("boom")
	if !strings.Contains(buf.String(), "\x1b[31mERROR\x1b[0m") {
		t.Fatalf("expected coloured level, got %q", buf.String())
	}
}
