package cmd

import (
	"fmt"

	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "View and change the tenant's subscription",
}

var subscriptionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		status, err := client.Subscription().Status(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Plan:   %s (%s)\n", status.Plan, status.Status)
		if status.Seats > 0 {
			fmt.Printf("Seats:  %d\n", status.Seats)
		}
		if status.RenewsAt != "" {
			fmt.Printf("Renews: %s\n", status.RenewsAt)
		}
		return nil
	},
}

var subscriptionPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List available plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Subscription().Plans(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range page.Items {
			fmt.Printf("%s  %s  %.2f/month\n", idStyle.Render(p.ID), titleStyle.Render(p.Name), p.PricePerMonth)
			for _, f := range p.Features {
				fmt.Printf("    • %s\n", f)
			}
		}
		return nil
	},
}

var subscriptionUpgradeCmd = &cobra.Command{
	Use:   "upgrade <plan-id>",
	Short: "Switch to another plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		status, err := client.Subscription().Upgrade(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		internal.PrintSuccess(fmt.Sprintf("Now on plan %s (%s)", status.Plan, status.Status))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subscriptionCmd)
	subscriptionCmd.AddCommand(subscriptionStatusCmd)
	subscriptionCmd.AddCommand(subscriptionPlansCmd)
	subscriptionCmd.AddCommand(subscriptionUpgradeCmd)
}
