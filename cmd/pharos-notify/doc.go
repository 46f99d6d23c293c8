// Package main hosts the pharos-notify CLI entrypoint and command graph.
//
// Running the root command triggers the requested Pharos notifications, one
// GET request per option, and logs each response. The config and endpoints
// subcommands help operators set up and inspect a cron deployment without
// sending anything.
//
// Keep this package lean: request building and logging live in
// internal/notifications, flag and environment resolution in internal/config.
package main
