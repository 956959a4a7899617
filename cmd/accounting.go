package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	accountingFrom    string
	accountingTo      string
	accountingAccount string
)

var accountingCmd = &cobra.Command{
	Use:   "accounting",
	Short: "View accounting summaries and ledger entries",
}

var accountingSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show revenue, expenses and profit for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		summary, err := client.Accounting().Summary(cmd.Context(), accountingFrom, accountingTo)
		if err != nil {
			return err
		}
		if summary.PeriodStart != "" {
			fmt.Println(dimStyle.Render(fmt.Sprintf("Period %s – %s", summary.PeriodStart, summary.PeriodEnd)))
		}
		fmt.Printf("Revenue:  %.2f\n", summary.Revenue)
		fmt.Printf("Expenses: %.2f\n", summary.Expenses)
		fmt.Printf("Profit:   %.2f\n", summary.Profit)
		return nil
	},
}

var accountingEntriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List ledger entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Accounting().Entries(cmd.Context(), accountingAccount)
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("No entries"))
			return nil
		}
		for _, e := range page.Items {
			fmt.Printf("%s  %-20s %10.2f  %s\n", dimStyle.Render(e.CreatedAt), e.Account, e.Amount, e.Memo)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountingCmd)
	accountingCmd.AddCommand(accountingSummaryCmd)
	accountingCmd.AddCommand(accountingEntriesCmd)

	accountingSummaryCmd.Flags().StringVar(&accountingFrom, "from", "", "Period start (RFC3339)")
	accountingSummaryCmd.Flags().StringVar(&accountingTo, "to", "", "Period end (RFC3339)")
	accountingEntriesCmd.Flags().StringVar(&accountingAccount, "account", "", "Filter by account")
}
