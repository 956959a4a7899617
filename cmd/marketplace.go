package cmd

import (
	"fmt"
	"strconv"

	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var marketplaceSearch string

var marketplaceCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Browse and publish cross-tenant listings",
}

var marketplaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List marketplace offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Marketplace().Listings(cmd.Context(), marketplaceSearch)
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("No listings found"))
			return nil
		}
		for _, l := range page.Items {
			shortID := l.ID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			fmt.Printf("%s  %s  %s\n", idStyle.Render(shortID), titleStyle.Render(l.Title), dimStyle.Render(fmt.Sprintf("%.2f", l.Price)))
		}
		return nil
	},
}

var marketplacePublishCmd = &cobra.Command{
	Use:   "publish <title> <price>",
	Short: "Publish a listing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("price must be a number: %w", err)
		}
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		created, err := client.Marketplace().Publish(cmd.Context(), &internal.Listing{Title: args[0], Price: price})
		if err != nil {
			return err
		}
		internal.PrintSuccess("Published listing " + created.ID)
		return nil
	},
}

var marketplaceUnpublishCmd = &cobra.Command{
	Use:   "unpublish <id>",
	Short: "Remove a listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.Marketplace().Unpublish(cmd.Context(), args[0]); err != nil {
			return err
		}
		internal.PrintSuccess("Listing removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(marketplaceCmd)
	marketplaceCmd.AddCommand(marketplaceListCmd)
	marketplaceCmd.AddCommand(marketplacePublishCmd)
	marketplaceCmd.AddCommand(marketplaceUnpublishCmd)

	marketplaceListCmd.Flags().StringVar(&marketplaceSearch, "search", "", "Filter by search term")
}
