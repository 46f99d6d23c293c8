package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeAPI()
	c.normalizeNotify()
	c.normalizeLogging()
}

func (c *Config) normalizeAPI() {
	if value, ok := lookupEnv(EnvHost); ok {
		c.API.Host = value
	}
	if value, ok := lookupEnv(EnvAPIUser); ok {
		c.API.User = value
	}
	if value, ok := lookupEnv(EnvAPIKey); ok {
		c.API.Key = value
	} else if value, ok := lookupEnv(EnvLegacyToken); ok {
		c.API.Key = value
	}
	c.API.Host = trimHost(c.API.Host)
	c.API.Scheme = strings.ToLower(strings.TrimSpace(c.API.Scheme))
	if c.API.Scheme == "" {
		c.API.Scheme = defaultScheme
	}
}

func (c *Config) normalizeNotify() {
	options := c.Notify.Options[:0]
	for _, opt := range c.Notify.Options {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}
	c.Notify.Options = options
	if len(c.Notify.Options) == 0 {
		c.Notify.Options = append([]string(nil), DefaultOptions...)
	}
	c.Notify.Since = strings.TrimSpace(c.Notify.Since)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// lookupEnv returns an environment value as set, treating blank values as unset.
func lookupEnv(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
