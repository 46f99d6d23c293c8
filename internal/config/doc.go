// Package config loads, normalizes, and validates pharos-notify settings.
//
// It supplies repository defaults, reads an optional TOML file, and honours
// the PHAROS_HOST, PHAROS_API_USER, PHAROS_API_KEY (and legacy
// PHAROS_API_TOKEN) environment fallbacks. Command-line flags are layered on
// top through ApplyOverrides so the request-issuing code receives one fully
// resolved Config instead of reading the process environment itself.
//
// Always obtain settings through this package so downstream code receives
// trimmed credentials, canonical log formats, and clear validation errors.
package config
