package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform administration (requires an admin account)",
}

var adminTenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "List tenant accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Admin().Tenants(cmd.Context())
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("No tenants"))
			return nil
		}

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Plan")+"\t"+titleStyle.Render("State")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, t := range page.Items {
			state := countStyle.Render("active")
			if !t.Active {
				state = lowStockStyle.Render("suspended")
			}
			shortID := t.ID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", idStyle.Render(shortID), t.Name, t.Plan, state)
		}
		_ = w.Flush()
		return nil
	},
}

var adminSuspendCmd = &cobra.Command{
	Use:   "suspend <tenant-id>",
	Short: "Suspend a tenant account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		t, err := client.Admin().SuspendTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		internal.PrintSuccess("Suspended " + t.Name)
		return nil
	},
}

var adminActivateCmd = &cobra.Command{
	Use:   "activate <tenant-id>",
	Short: "Re-activate a suspended tenant account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		t, err := client.Admin().ActivateTenant(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		internal.PrintSuccess("Activated " + t.Name)
		return nil
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform-wide usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		stats, err := client.Admin().Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Tenants: %d\n", stats.Tenants)
		fmt.Printf("Users:   %d\n", stats.Users)
		fmt.Printf("Orders:  %d\n", stats.Orders)
		fmt.Printf("Revenue: %.2f\n", stats.Revenue)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminTenantsCmd)
	adminCmd.AddCommand(adminSuspendCmd)
	adminCmd.AddCommand(adminActivateCmd)
	adminCmd.AddCommand(adminStatsCmd)
}
