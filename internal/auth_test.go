package internal

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/openretail/backoffice/testutil"
)

func TestAuthService_LoginStoresToken(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("POST", "/auth/login", 200,
		map[string]string{"access_token": "fresh-token", "token_type": "bearer"})

	client := newTestClient(t, backend)
	resp, err := client.Auth().Login(context.Background(), "ana@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken != "fresh-token" {
		t.Errorf("AccessToken = %q, want fresh-token", resp.AccessToken)
	}
	if got := client.Tokens().Get(); got != "fresh-token" {
		t.Errorf("stored token = %q, want fresh-token", got)
	}

	var creds Credentials
	if err := json.Unmarshal(backend.LastRequest().Body, &creds); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	if creds.Email != "ana@example.com" {
		t.Errorf("sent email = %q", creds.Email)
	}
}

func TestAuthService_RegisterStoresToken(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("POST", "/auth/register", 201,
		map[string]string{"access_token": "new-account-token"})

	client := newTestClient(t, backend)
	_, err := client.Auth().Register(context.Background(), &Registration{
		Email:    "ben@example.com",
		Password: "pw",
		Name:     "Ben",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got := client.Tokens().Get(); got != "new-account-token" {
		t.Errorf("stored token = %q, want new-account-token", got)
	}
}

func TestAuthService_Logout(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	client := newTestClient(t, backend)
	if err := client.Tokens().Set("tok"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := client.Auth().Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if got := client.Tokens().Get(); got != "" {
		t.Errorf("token after Logout() = %q, want empty", got)
	}
}

func TestAuthService_Me(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/auth/me", 200, map[string]string{
		"id": "u1", "email": "ana@example.com", "name": "Ana", "role": "owner", "tenant_id": "t1",
	})

	client := newTestClient(t, backend)
	profile, err := client.Auth().Me(context.Background())
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if profile.Email != "ana@example.com" || profile.TenantID != "t1" {
		t.Errorf("Me() = %+v", profile)
	}
}
