package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pharosnotify/internal/config"
	"pharosnotify/internal/logging"
)

// invocationFlags holds the raw values bound to the persistent flags.
type invocationFlags struct {
	configPath string
	host       string
	user       string
	key        string
	options    *optionFlag
	since      string
	timeout    int
	logFormat  string
	logLevel   string
}

type commandContext struct {
	flags *invocationFlags

	// words are the positional arguments of the root command.
	words []string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *invocationFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig resolves flags, environment, and the config file once.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		overrides, err := c.overrides(cmd)
		if err != nil {
			c.configErr = err
			return
		}
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.configPath), overrides)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) overrides(cmd *cobra.Command) (config.Overrides, error) {
	flags := cmd.Flags()
	var o config.Overrides
	if flags.Changed("host") {
		o.Host = &c.flags.host
	}
	if flags.Changed("user") {
		o.User = &c.flags.user
	}
	if flags.Changed("key") {
		o.Key = &c.flags.key
	}
	if flags.Changed("since") {
		o.Since = &c.flags.since
	}
	if flags.Changed("timeout") {
		o.RequestTimeout = &c.flags.timeout
	}
	if flags.Changed("log-format") {
		o.LogFormat = &c.flags.logFormat
	}
	if flags.Changed("log-level") {
		o.LogLevel = &c.flags.logLevel
	}
	options, err := c.flags.options.resolve(c.words)
	if err != nil {
		return o, err
	}
	o.Options = options
	return o, nil
}

// newRunLogger builds the logger for one invocation, tagged with a run id.
func newRunLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return logger.With(slog.String(logging.FieldRunID, uuid.NewString())), nil
}
