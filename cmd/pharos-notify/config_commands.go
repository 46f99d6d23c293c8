package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pharosnotify/internal/config"
	"pharosnotify/internal/notifications"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration with placeholder credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(targetPath)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			if _, err := os.Stat(target); err == nil && !overwrite {
				return fmt.Errorf("%s already exists; pass --overwrite to replace it", target)
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			fmt.Fprintf(cmd.OutOrStdout(), "Set [api] host and user there, or export %s and %s. Prefer %s over storing the key in the file.\n",
				config.EnvHost, config.EnvAPIUser, config.EnvAPIKey)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Where to write the file (default ~/.config/pharos-notify/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

// initTarget picks the file config init writes: --path when given, else the
// default location Load reads first.
func initTarget(flagValue string) (string, error) {
	if path := strings.TrimSpace(flagValue); path != "" {
		return config.ExpandPath(path)
	}
	return config.DefaultConfigPath()
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration, environment, and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts, err := notifications.ParseOptions(cfg.Notify.Options)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			names := make([]string, 0, len(opts))
			for _, opt := range opts {
				names = append(names, opt.String())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; flags, environment, and defaults were used")
			}
			fmt.Fprintf(out, "Host: %s://%s\n", cfg.API.Scheme, cfg.API.Host)
			fmt.Fprintf(out, "User: %s\n", cfg.API.User)
			fmt.Fprintf(out, "API key set: %s\n", yesNo(cfg.API.Key != ""))
			fmt.Fprintf(out, "Options: %s\n", strings.Join(names, ", "))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
