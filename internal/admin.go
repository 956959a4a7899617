package internal

import (
	"context"
	"net/url"
)

// AdminService groups the platform-admin console endpoints. They require an
// admin role server-side; the client does not gate them.
type AdminService struct {
	client *Client
}

// Admin returns the admin service.
func (c *Client) Admin() *AdminService {
	return &AdminService{client: c}
}

// Tenants lists all tenant accounts.
func (s *AdminService) Tenants(ctx context.Context) (Page[Tenant], error) {
	return getPage[Tenant](ctx, s.client, "/admin/tenants")
}

// SuspendTenant disables a tenant account.
func (s *AdminService) SuspendTenant(ctx context.Context, id string) (*Tenant, error) {
	var t Tenant
	if err := s.client.Put(ctx, "/admin/tenants/"+url.PathEscape(id)+"/suspend", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ActivateTenant re-enables a suspended tenant account.
func (s *AdminService) ActivateTenant(ctx context.Context, id string) (*Tenant, error) {
	var t Tenant
	if err := s.client.Put(ctx, "/admin/tenants/"+url.PathEscape(id)+"/activate", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Stats returns platform-wide usage figures.
func (s *AdminService) Stats(ctx context.Context) (*PlatformStats, error) {
	var stats PlatformStats
	if err := s.client.Get(ctx, "/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
