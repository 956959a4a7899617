package internal

import (
	"context"
	"net/url"
)

// MarketplaceService groups the cross-tenant listing endpoints.
type MarketplaceService struct {
	client *Client
}

// Marketplace returns the marketplace service.
func (c *Client) Marketplace() *MarketplaceService {
	return &MarketplaceService{client: c}
}

// Listings returns marketplace offers, optionally filtered by a search term.
func (s *MarketplaceService) Listings(ctx context.Context, search string) (Page[Listing], error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	return getPage[Listing](ctx, s.client, withQuery("/marketplace/listings", params))
}

// Publish creates a listing.
func (s *MarketplaceService) Publish(ctx context.Context, l *Listing) (*Listing, error) {
	var created Listing
	if err := s.client.Post(ctx, "/marketplace/listings", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Unpublish removes a listing.
func (s *MarketplaceService) Unpublish(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/marketplace/listings/"+url.PathEscape(id))
}
