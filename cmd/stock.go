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

var stockAdjustReason string

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Adjust stock levels and view replenishment suggestions",
}

var stockAdjustCmd = &cobra.Command{
	Use:   "adjust <product-id> <delta>",
	Short: "Record a stock adjustment",
	Long: `Record a manual stock adjustment for a product.

The delta is a signed integer: positive for received stock, negative for
shrinkage or corrections.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be an integer: %w", err)
		}
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		adj, err := client.Stock().Adjust(cmd.Context(), args[0], delta, stockAdjustReason)
		if err != nil {
			return err
		}
		internal.PrintSuccess(fmt.Sprintf("Adjustment %s recorded (%+d)", adj.ID, adj.Delta))
		return nil
	},
}

var stockSuggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Show replenishment suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Stock().ReplenishmentSuggestions(cmd.Context())
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("Nothing to reorder"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("%d product(s) need restocking", len(page.Items))))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Product")+"\t"+titleStyle.Render("On hand")+"\t"+titleStyle.Render("Suggested order")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, s := range page.Items {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n",
				s.ProductName,
				lowStockStyle.Render(strconv.Itoa(s.CurrentQuantity)),
				countStyle.Render(strconv.Itoa(s.SuggestedOrder)),
			)
		}
		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stockCmd)
	stockCmd.AddCommand(stockAdjustCmd)
	stockCmd.AddCommand(stockSuggestionsCmd)

	stockAdjustCmd.Flags().StringVar(&stockAdjustReason, "reason", "", "Reason for the adjustment")
}
