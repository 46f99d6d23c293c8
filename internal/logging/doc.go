// Package logging assembles the slog loggers used by pharos-notify.
//
// It owns the console and JSON handlers, maps the configured level and format
// onto them, and provides a no-op logger for tests and wiring code that cannot
// fail. Console output starts every line with a local timestamp, matching the
// cron-friendly format operators already grep for.
package logging
