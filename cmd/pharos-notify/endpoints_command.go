package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pharosnotify/internal/notifications"
)

const hostPlaceholder = "<host>"

type endpointRow struct {
	Option string `json:"option"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Since  bool   `json:"accepts_since"`
}

func newEndpointsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the notification endpoints without calling them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, host, since := "https", hostPlaceholder, ""
			// Credentials are not needed to list endpoints, so a config that
			// fails validation still falls back to the placeholder host.
			if cfg, err := ctx.ensureConfig(cmd); err == nil {
				scheme, host = cfg.API.Scheme, cfg.API.Host
				since, _ = cfg.SinceParam(time.Now())
			} else if cmd.Flags().Changed("host") {
				host = ctx.flags.host
			}

			rows := endpointRows(scheme, host, since)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderEndpointTable(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func endpointRows(scheme, host, since string) []endpointRow {
	title := cases.Title(language.English)
	rows := make([]endpointRow, 0, len(notifications.AllOptions()))
	for _, opt := range notifications.AllOptions() {
		rows = append(rows, endpointRow{
			Option: opt.String(),
			Name:   title.String(opt.String()),
			URL:    notifications.EndpointURL(scheme, host, opt, since),
			Since:  opt.SupportsSince(),
		})
	}
	return rows
}

func renderEndpointTable(rows []endpointRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Notification", "Option", "URL", "Since"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Name, row.Option, row.URL, yesNo(row.Since)})
	}
	return tw.Render()
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
