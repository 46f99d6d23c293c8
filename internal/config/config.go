package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// API contains the Pharos host and credentials.
type API struct {
	Host   string `toml:"host"`
	User   string `toml:"user"`
	Key    string `toml:"key"`
	Scheme string `toml:"scheme"`
}

// Notify contains the notification selection and request settings.
type Notify struct {
	Options        []string `toml:"options"`
	Since          string   `toml:"since"`
	RequestTimeout int      `toml:"request_timeout"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for one pharos-notify run.
//
// Configuration sections:
//   - API: Pharos host, API user and key
//   - Notify: which notifications to trigger and request timing
//   - Logging: log format and level
type Config struct {
	API     API     `toml:"api"`
	Notify  Notify  `toml:"notify"`
	Logging Logging `toml:"logging"`

	// explicit records fields set from the command line, even when empty.
	explicit map[string]bool
}

// Overrides carries values given explicitly on the command line. Nil fields
// were not supplied and leave the file/environment value in place.
type Overrides struct {
	Host           *string
	User           *string
	Key            *string
	Options        []string
	Since          *string
	RequestTimeout *int
	LogFormat      *string
	LogLevel       *string
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/pharos-notify/config.toml")
}

// Load locates and parses a configuration file, applies environment
// fallbacks and command-line overrides, then validates the result.
func Load(path string, overrides Overrides) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	cfg.ApplyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("pharos-notify.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ApplyOverrides layers explicit command-line values over the loaded config.
// An explicitly empty credential is kept as given.
func (c *Config) ApplyOverrides(o Overrides) {
	set := func(name string, dst *string, src *string) {
		if src == nil {
			return
		}
		*dst = strings.TrimSpace(*src)
		c.markExplicit(name)
	}
	// Credentials are opaque and sent exactly as typed.
	setRaw := func(name string, dst *string, src *string) {
		if src == nil {
			return
		}
		*dst = *src
		c.markExplicit(name)
	}
	set("api.host", &c.API.Host, o.Host)
	setRaw("api.user", &c.API.User, o.User)
	setRaw("api.key", &c.API.Key, o.Key)
	set("notify.since", &c.Notify.Since, o.Since)
	set("logging.format", &c.Logging.Format, o.LogFormat)
	set("logging.level", &c.Logging.Level, o.LogLevel)

	if len(o.Options) > 0 {
		c.Notify.Options = append([]string(nil), o.Options...)
		c.markExplicit("notify.options")
	}
	if o.RequestTimeout != nil {
		c.Notify.RequestTimeout = *o.RequestTimeout
		c.markExplicit("notify.request_timeout")
	}
	c.API.Host = trimHost(c.API.Host)
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	c.Logging.Level = strings.ToLower(c.Logging.Level)
}

func (c *Config) markExplicit(name string) {
	if c.explicit == nil {
		c.explicit = make(map[string]bool)
	}
	c.explicit[name] = true
}

// Explicit reports whether the named field was set on the command line.
func (c *Config) Explicit(name string) bool {
	return c.explicit[name]
}

// RequestTimeout returns the per-request timeout. Zero means no timeout.
func (c *Config) RequestTimeout() time.Duration {
	if c.Notify.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(c.Notify.RequestTimeout) * time.Second
}

// SinceParam resolves notify.since into the RFC 3339 value sent to the
// server. Durations are subtracted from now. An empty result means the
// parameter should be omitted.
func (c *Config) SinceParam(now time.Time) (string, error) {
	return parseSince(c.Notify.Since, now)
}

func parseSince(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		if d <= 0 {
			return "", fmt.Errorf("notify.since duration must be positive, got %q", value)
		}
		return now.Add(-d).UTC().Format(time.RFC3339), nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC().Format(time.RFC3339), nil
	}
	if day, err := time.Parse(time.DateOnly, value); err == nil {
		return day.UTC().Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("notify.since: %q is neither a duration (48h) nor a timestamp (RFC 3339 or YYYY-MM-DD)", value)
}

func trimHost(host string) string {
	return strings.TrimRight(strings.TrimSpace(host), "/")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
