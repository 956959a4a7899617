package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var (
	salesStatus string
	salesFrom   string
	salesTo     string
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Browse orders",
}

var salesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Sales().List(cmd.Context(), internal.SalesFilter{
			Status: salesStatus,
			From:   salesFrom,
			To:     salesTo,
		})
		if err != nil {
			return err
		}

		snapshots, err := openSnapshots(cfg)
		if err == nil {
			if err := snapshots.Save("sales", page.Items); err != nil {
				internal.LogWarn("Failed to save snapshot: %v", err)
			}
			snapshots.Close()
		}

		displayOrders(page.Items)
		return nil
	},
}

var salesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		o, err := client.Sales().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render("Order " + o.ID))
		fmt.Printf("Status: %s\n", o.Status)
		fmt.Printf("Total:  %.2f\n", o.Total)
		for _, item := range o.Items {
			fmt.Printf("  %s x%d @ %.2f\n", item.ProductID, item.Quantity, item.UnitPrice)
		}
		return nil
	},
}

func displayOrders(orders []internal.Order) {
	if len(orders) == 0 {
		fmt.Println(headerStyle.Render("No orders found"))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Found %d order(s)", len(orders))))
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Status")+"\t"+titleStyle.Render("Items")+"\t"+titleStyle.Render("Total")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 70))
	for _, o := range orders {
		shortID := o.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			idStyle.Render(shortID),
			o.Status,
			countStyle.Render(strconv.Itoa(len(o.Items))),
			dimStyle.Render(fmt.Sprintf("%.2f", o.Total)),
		)
	}
	_ = w.Flush()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(salesCmd)
	salesCmd.AddCommand(salesListCmd)
	salesCmd.AddCommand(salesGetCmd)

	salesListCmd.Flags().StringVar(&salesStatus, "status", "", "Filter by status")
	salesListCmd.Flags().StringVar(&salesFrom, "from", "", "Start date (inclusive, RFC3339)")
	salesListCmd.Flags().StringVar(&salesTo, "to", "", "End date (exclusive, RFC3339)")
}
