package internal

import (
	"context"
	"net/url"
)

// StockService groups the stock level endpoints.
type StockService struct {
	client *Client
}

// Stock returns the stock service.
func (c *Client) Stock() *StockService {
	return &StockService{client: c}
}

// Adjust records a manual quantity change for a product.
func (s *StockService) Adjust(ctx context.Context, productID string, delta int, reason string) (*StockAdjustment, error) {
	var adj StockAdjustment
	body := &StockAdjustment{ProductID: productID, Delta: delta, Reason: reason}
	if err := s.client.Post(ctx, "/stock/adjustments", body, &adj); err != nil {
		return nil, err
	}
	return &adj, nil
}

// Adjustments lists adjustments, optionally for a single product.
func (s *StockService) Adjustments(ctx context.Context, productID string) (Page[StockAdjustment], error) {
	params := url.Values{}
	if productID != "" {
		params.Set("product_id", productID)
	}
	return getPage[StockAdjustment](ctx, s.client, withQuery("/stock/adjustments", params))
}

// ReplenishmentSuggestions returns backend-computed reorder hints.
func (s *StockService) ReplenishmentSuggestions(ctx context.Context) (Page[ReplenishmentSuggestion], error) {
	return getPage[ReplenishmentSuggestion](ctx, s.client, "/stock/replenishment")
}
