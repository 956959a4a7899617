package cmd

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "no arguments shows help",
			args:    []string{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"nonexistent-command"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() should return error for nonexistent command")
	}
}

func TestResolveConfigDir_FlagOverride(t *testing.T) {
	old := configDir
	defer func() { configDir = old }()

	configDir = "/tmp/custom-config"
	dir, err := resolveConfigDir()
	if err != nil {
		t.Fatalf("resolveConfigDir() error = %v", err)
	}
	if dir != "/tmp/custom-config" {
		t.Errorf("resolveConfigDir() = %q, want the flag value", dir)
	}
}

func TestLoadAppConfig_ServerOverride(t *testing.T) {
	oldDir, oldServer := configDir, serverURL
	defer func() { configDir, serverURL = oldDir, oldServer }()

	configDir = t.TempDir()
	serverURL = "http://staging.example.com"

	cfg, _, err := loadAppConfig()
	if err != nil {
		t.Fatalf("loadAppConfig() error = %v", err)
	}
	if cfg.ServerURL != "http://staging.example.com" {
		t.Errorf("ServerURL = %q, want the --server override", cfg.ServerURL)
	}
}
