package internal

import (
	"context"
	"net/url"
)

// SalesService groups the order endpoints.
type SalesService struct {
	client *Client
}

// Sales returns the sales service.
func (c *Client) Sales() *SalesService {
	return &SalesService{client: c}
}

// SalesFilter narrows an order listing. Zero values are omitted.
type SalesFilter struct {
	Status string
	From   string // RFC3339 date, inclusive
	To     string // RFC3339 date, exclusive
}

func (f SalesFilter) query() url.Values {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.From != "" {
		params.Set("from", f.From)
	}
	if f.To != "" {
		params.Set("to", f.To)
	}
	return params
}

// List returns orders matching the filter.
func (s *SalesService) List(ctx context.Context, filter SalesFilter) (Page[Order], error) {
	return getPage[Order](ctx, s.client, withQuery("/sales", filter.query()))
}

// Get returns one order by id.
func (s *SalesService) Get(ctx context.Context, id string) (*Order, error) {
	var o Order
	if err := s.client.Get(ctx, "/sales/"+url.PathEscape(id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create records a sale.
func (s *SalesService) Create(ctx context.Context, o *Order) (*Order, error) {
	var created Order
	if err := s.client.Post(ctx, "/sales", o, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
