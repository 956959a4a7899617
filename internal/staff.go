package internal

import (
	"context"
	"net/url"
)

// StaffService groups the employee and permission endpoints.
type StaffService struct {
	client *Client
}

// Staff returns the staff service.
func (c *Client) Staff() *StaffService {
	return &StaffService{client: c}
}

// List returns all staff members of the tenant.
func (s *StaffService) List(ctx context.Context) (Page[StaffMember], error) {
	return getPage[StaffMember](ctx, s.client, "/staff")
}

// Get returns one staff member by id.
func (s *StaffService) Get(ctx context.Context, id string) (*StaffMember, error) {
	var m StaffMember
	if err := s.client.Get(ctx, "/staff/"+url.PathEscape(id), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create adds a staff member.
func (s *StaffService) Create(ctx context.Context, m *StaffMember) (*StaffMember, error) {
	var created StaffMember
	if err := s.client.Post(ctx, "/staff", m, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a staff member, including their permission set.
func (s *StaffService) Update(ctx context.Context, id string, m *StaffMember) (*StaffMember, error) {
	var updated StaffMember
	if err := s.client.Put(ctx, "/staff/"+url.PathEscape(id), m, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a staff member.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/staff/"+url.PathEscape(id))
}
