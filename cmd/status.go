package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var (
	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	statusBadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	statusSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("62")).
				Bold(true).
				Underline(true)
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check configuration, session and server reachability",
	Long: `Check the health of the client setup by verifying:
  • Config file and server URL
  • Stored session token
  • Server reachability
  • Authenticated identity

This command is useful for debugging connection issues, especially in
scripted environments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(statusSectionStyle.Render("Back-office status"))
		fmt.Println()

		cfg, dir, err := loadAppConfig()
		if err != nil {
			fmt.Println(statusBadStyle.Render("✗ Config:"), err)
			os.Exit(1)
		}
		fmt.Println(statusOKStyle.Render("✓ Config:"), statusInfoStyle.Render(dir))
		fmt.Println(statusInfoStyle.Render("  Server: " + cfg.ServerURL))

		tokens := internal.NewFileTokenStore(dir)
		if tokens.Get() == "" {
			fmt.Println(statusBadStyle.Render("✗ Session: no token stored (run `backoffice login`)"))
		} else {
			fmt.Println(statusOKStyle.Render("✓ Session: token present"))
		}

		client, _, err := newAPIClient()
		if err != nil {
			return err
		}

		var health map[string]any
		if err := client.Get(cmd.Context(), "/health", &health); err != nil {
			fmt.Println(statusBadStyle.Render("✗ Server unreachable:"), err)
			os.Exit(1)
		}
		fmt.Println(statusOKStyle.Render("✓ Server reachable"))

		if tokens.Get() != "" {
			profile, err := client.Auth().Me(cmd.Context())
			if err != nil {
				fmt.Println(statusBadStyle.Render("✗ Identity check failed:"), err)
				os.Exit(1)
			}
			fmt.Println(statusOKStyle.Render("✓ Signed in as " + profile.Email))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
