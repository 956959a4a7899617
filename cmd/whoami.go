package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		profile, err := client.Auth().Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", profile.Name, profile.Email)
		fmt.Printf("Role:   %s\n", profile.Role)
		fmt.Printf("Tenant: %s\n", profile.TenantID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
