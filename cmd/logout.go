package cmd

import (
	"fmt"

	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.Auth().Logout(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		internal.PrintSuccess("Signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
