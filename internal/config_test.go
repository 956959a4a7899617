package internal

import (
	"testing"
	"time"

	"github.com/openretail/backoffice/testutil"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.Timeout() != time.Duration(DefaultTimeoutSeconds)*time.Second {
		t.Errorf("Timeout() = %v, want %ds", cfg.Timeout(), DefaultTimeoutSeconds)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want config dir %q", cfg.DataDir, dir)
	}
}

func TestConfig_RoundTrip(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	want := &AppConfig{
		ServerURL:      "https://api.example.com",
		TimeoutSeconds: 5,
		DataDir:        "/tmp/backoffice-data",
	}
	if err := SaveConfig(dir, want); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got.ServerURL != want.ServerURL {
		t.Errorf("ServerURL = %q, want %q", got.ServerURL, want.ServerURL)
	}
	if got.TimeoutSeconds != want.TimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want %d", got.TimeoutSeconds, want.TimeoutSeconds)
	}
	if got.DataDir != want.DataDir {
		t.Errorf("DataDir = %q, want %q", got.DataDir, want.DataDir)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	if err := SaveConfig(dir, &AppConfig{ServerURL: "https://configured.example.com"}); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	t.Setenv("OPENRETAIL_SERVER", "https://env.example.com")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ServerURL != "https://env.example.com" {
		t.Errorf("ServerURL = %q, want env override", cfg.ServerURL)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	testutil.WriteFile(t, dir, "config.yaml", "::: not yaml :::")

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig() on malformed YAML should fail")
	}
}
