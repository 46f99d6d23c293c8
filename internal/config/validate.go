package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateNotify(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.Host == "" && !c.Explicit("api.host") {
		return missingValueError("api.host", "--host", EnvHost)
	}
	if strings.Contains(c.API.Host, "://") {
		return fmt.Errorf("api.host must be a host name without a scheme, got %q", c.API.Host)
	}
	if strings.ContainsAny(c.API.Host, "/ \t") {
		return fmt.Errorf("api.host must not contain a path or whitespace, got %q", c.API.Host)
	}
	if c.API.User == "" && !c.Explicit("api.user") {
		return missingValueError("api.user", "--user", EnvAPIUser)
	}
	if c.API.Key == "" && !c.Explicit("api.key") {
		return missingValueError("api.key", "--key", EnvAPIKey)
	}
	switch c.API.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("api.scheme must be http or https, got %q", c.API.Scheme)
	}
	return nil
}

func (c *Config) validateNotify() error {
	if len(c.Notify.Options) == 0 {
		return errors.New("notify.options must name at least one notification")
	}
	for _, value := range c.Notify.Options {
		for _, part := range strings.Split(value, ",") {
			name := strings.ToLower(strings.TrimSpace(part))
			if name != "" && !slices.Contains(OptionNames, name) {
				return fmt.Errorf("invalid notification option %q (choose from %s)", strings.TrimSpace(part), strings.Join(OptionNames, ", "))
			}
		}
	}
	if c.Notify.RequestTimeout < 0 {
		return errors.New("notify.request_timeout must not be negative (seconds, 0 disables)")
	}
	if _, err := parseSince(c.Notify.Since, time.Now()); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func missingValueError(field, flag, env string) error {
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/pharos-notify/config.toml"
	}
	return fmt.Errorf("%s is required. Pass %s, set %s, or edit %s (create with 'pharos-notify config init')", field, flag, env, defaultPath)
}
