package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	serverURL string
	configDir string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Command-line client for the openretail back-office API",
	Long: `A command-line client for the openretail back-office.

All data lives on the server; this tool wraps its REST API with session
handling, consistent error reporting and offline snapshots of the last
fetched listings.

Quick Start:
  backoffice login you@example.com       # Start a session
  backoffice products list               # Browse the catalog
  backoffice alerts watch                # Follow alerts as they arrive
  backoffice chat list                   # See your conversations

Configuration is read from config.yaml in the config directory
(default: the OS user config dir under "openretail"). The server URL can
also be set with --server or the OPENRETAIL_SERVER environment variable.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Custom config directory")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveConfigDir returns the effective config directory.
func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	return internal.DefaultConfigDir()
}

// loadAppConfig loads the config file, applying the --server override.
func loadAppConfig() (*internal.AppConfig, string, error) {
	dir, err := resolveConfigDir()
	if err != nil {
		return nil, "", err
	}
	cfg, err := internal.LoadConfig(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	return cfg, dir, nil
}

// newAPIClient builds the API client used by every command. Session expiry is
// reported once here so all commands behave identically.
func newAPIClient() (*internal.Client, *internal.AppConfig, error) {
	cfg, dir, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := internal.NewClient(internal.ClientConfig{
		BaseURL: cfg.ServerURL,
		Tokens:  internal.NewFileTokenStore(dir),
		OnSessionExpired: func() {
			internal.PrintWarning("Session expired. Run `backoffice login` to sign in again.")
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// openSnapshots opens the offline snapshot store under the data directory.
func openSnapshots(cfg *internal.AppConfig) (*internal.SnapshotStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, err
	}
	return internal.OpenSnapshotStore(filepath.Join(cfg.DataDir, "snapshots.db"))
}
