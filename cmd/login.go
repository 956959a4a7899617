package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and store a session token",
	Long: `Sign in to the back-office server.

On success the session token is stored in the config directory and attached
to every subsequent request until logout or expiry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}

		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		if _, err := client.Auth().Login(cmd.Context(), args[0], password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		internal.PrintSuccess(fmt.Sprintf("Signed in as %s", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted if omitted)")
}
