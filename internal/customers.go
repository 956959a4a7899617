package internal

import (
	"context"
	"net/url"
)

// CustomersService groups the CRM endpoints.
type CustomersService struct {
	client *Client
}

// Customers returns the CRM service.
func (c *Client) Customers() *CustomersService {
	return &CustomersService{client: c}
}

// List returns customers, optionally filtered by a search term.
func (s *CustomersService) List(ctx context.Context, search string) (Page[Customer], error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	return getPage[Customer](ctx, s.client, withQuery("/customers", params))
}

// Get returns one customer by id.
func (s *CustomersService) Get(ctx context.Context, id string) (*Customer, error) {
	var c Customer
	if err := s.client.Get(ctx, "/customers/"+url.PathEscape(id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create adds a customer.
func (s *CustomersService) Create(ctx context.Context, c *Customer) (*Customer, error) {
	var created Customer
	if err := s.client.Post(ctx, "/customers", c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a customer.
func (s *CustomersService) Update(ctx context.Context, id string, c *Customer) (*Customer, error) {
	var updated Customer
	if err := s.client.Put(ctx, "/customers/"+url.PathEscape(id), c, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a customer.
func (s *CustomersService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/customers/"+url.PathEscape(id))
}
