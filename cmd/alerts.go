package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var (
	alertsAll      bool
	alertsInterval int
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "View and resolve alerts",
}

var alertsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Alerts().List(cmd.Context(), alertsAll)
		if err != nil {
			return err
		}
		displayAlerts(page.Items)
		return nil
	},
}

var alertsResolveCmd = &cobra.Command{
	Use:   "resolve <id>",
	Short: "Mark an alert as handled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		a, err := client.Alerts().Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		internal.PrintSuccess("Resolved: " + a.Message)
		return nil
	},
}

var alertsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll for alerts until interrupted",
	Long: `Poll the alert list on a fixed interval and print newly seen alerts.

Polling errors are logged and skipped so a transient failure does not end
the watch. Press Ctrl-C to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}

		seen := make(map[string]bool)
		poller := internal.NewPoller(time.Duration(alertsInterval)*time.Second, func(ctx context.Context) {
			page, err := client.Alerts().List(ctx, false)
			if err != nil {
				internal.LogDebug("Alert poll failed: %v", err)
				return
			}
			for _, a := range page.Items {
				if seen[a.ID] {
					continue
				}
				seen[a.ID] = true
				fmt.Printf("[%s] %s %s\n", a.Severity, dimStyle.Render(a.CreatedAt), a.Message)
			}
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		internal.PrintInfo(fmt.Sprintf("Watching alerts every %ds (Ctrl-C to stop)", alertsInterval))
		poller.Start(ctx)
		<-ctx.Done()
		poller.Stop()
		return nil
	},
}

func displayAlerts(alerts []internal.Alert) {
	if len(alerts) == 0 {
		fmt.Println(headerStyle.Render("No alerts"))
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%d alert(s)", len(alerts))))
	for _, a := range alerts {
		marker := "•"
		if a.Resolved {
			marker = "✓"
		}
		fmt.Printf("%s [%s] %s  %s\n", marker, a.Severity, a.Message, dimStyle.Render(a.CreatedAt))
	}
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsListCmd)
	alertsCmd.AddCommand(alertsResolveCmd)
	alertsCmd.AddCommand(alertsWatchCmd)

	alertsListCmd.Flags().BoolVar(&alertsAll, "all", false, "Include resolved alerts")
	alertsWatchCmd.Flags().IntVar(&alertsInterval, "interval", 15, "Poll interval in seconds")
}
