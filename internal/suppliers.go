package internal

import (
	"context"
	"net/url"
)

// SuppliersService groups the vendor endpoints.
type SuppliersService struct {
	client *Client
}

// Suppliers returns the supplier service.
func (c *Client) Suppliers() *SuppliersService {
	return &SuppliersService{client: c}
}

// List returns all suppliers.
func (s *SuppliersService) List(ctx context.Context) (Page[Supplier], error) {
	return getPage[Supplier](ctx, s.client, "/suppliers")
}

// Get returns one supplier by id.
func (s *SuppliersService) Get(ctx context.Context, id string) (*Supplier, error) {
	var sup Supplier
	if err := s.client.Get(ctx, "/suppliers/"+url.PathEscape(id), &sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

// Create adds a supplier.
func (s *SuppliersService) Create(ctx context.Context, sup *Supplier) (*Supplier, error) {
	var created Supplier
	if err := s.client.Post(ctx, "/suppliers", sup, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a supplier.
func (s *SuppliersService) Update(ctx context.Context, id string, sup *Supplier) (*Supplier, error) {
	var updated Supplier
	if err := s.client.Put(ctx, "/suppliers/"+url.PathEscape(id), sup, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a supplier.
func (s *SuppliersService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/suppliers/"+url.PathEscape(id))
}
