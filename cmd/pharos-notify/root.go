package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &invocationFlags{}
	ctx := newCommandContext(flags)
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "pharos-notify [-o option...]",
		Short: "Trigger Pharos email notifications",
		Long: `Call private Pharos API endpoints to trigger email notifications.

Each selected option (fixity, restore, snapshot, deletion) results in one GET
request to https://<host>/api/v2/... and one log line with the response status
and body. Credentials default to PHAROS_API_USER / PHAROS_API_KEY and the host
to PHAROS_HOST when the flags are omitted.`,
		Example: `  pharos-notify -H repo.example.org
  pharos-notify -o snapshot deletion
  pharos-notify -o fixity --since 72h`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx.words = args
			return runNotify(cmd, ctx, dryRun)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return invocationError(cmd, err)
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVarP(&flags.user, "user", "u", "", "API user for Pharos, needs admin privileges (default $PHAROS_API_USER)")
	pf.StringVarP(&flags.key, "key", "k", "", "Pharos API key (default $PHAROS_API_KEY)")
	pf.StringVarP(&flags.host, "host", "H", "", "Host to connect to, without scheme (default $PHAROS_HOST)")
	flags.options = newOptionFlag(rootCmd.Flags())
	pf.VarP(flags.options, "opt", "o", "Notification options: fixity, restore, snapshot, deletion (default fixity,restore)")
	pf.StringVar(&flags.since, "since", "", "Only notify about events after this time (RFC 3339, YYYY-MM-DD, or a duration like 48h)")
	pf.IntVar(&flags.timeout, "timeout", 0, "Per-request timeout in seconds (0 waits indefinitely)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the requests that would be sent and exit")

	rootCmd.AddCommand(newEndpointsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
