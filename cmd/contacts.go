package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Customers, suppliers and staff share the same thin list surface; the
// interesting CRUD lives in the API services.

var customerSearch string

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Customers().List(cmd.Context(), customerSearch)
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("No customers found"))
			return nil
		}
		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Name")+"\t"+titleStyle.Render("Email")+"\t"+titleStyle.Render("Points")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, c := range page.Items {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t\n", c.Name, dimStyle.Render(c.Email), c.LoyaltyPoints)
		}
		_ = w.Flush()
		return nil
	},
}

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Suppliers().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("No suppliers found"))
			return nil
		}
		for _, s := range page.Items {
			fmt.Printf("%s  %s  %s\n", titleStyle.Render(s.Name), dimStyle.Render(s.Email), dimStyle.Render(fmt.Sprintf("lead %dd", s.LeadTimeDays)))
		}
		return nil
	},
}

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "List staff members and their permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Staff().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("No staff found"))
			return nil
		}
		for _, m := range page.Items {
			state := ""
			if !m.Active {
				state = lowStockStyle.Render(" (inactive)")
			}
			fmt.Printf("%s <%s> %s%s\n", titleStyle.Render(m.Name), m.Email, dimStyle.Render(m.Role), state)
			if len(m.Permissions) > 0 {
				fmt.Printf("    %s\n", dimStyle.Render(strings.Join(m.Permissions, ", ")))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(suppliersCmd)
	rootCmd.AddCommand(staffCmd)

	customersCmd.Flags().StringVar(&customerSearch, "search", "", "Filter by search term")
}
