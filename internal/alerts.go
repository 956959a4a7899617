package internal

import (
	"context"
	"net/url"
)

// AlertsService groups the alert endpoints.
type AlertsService struct {
	client *Client
}

// Alerts returns the alert service.
func (c *Client) Alerts() *AlertsService {
	return &AlertsService{client: c}
}

// List returns alerts, excluding resolved ones unless includeResolved is set.
func (s *AlertsService) List(ctx context.Context, includeResolved bool) (Page[Alert], error) {
	params := url.Values{}
	if includeResolved {
		params.Set("include_resolved", "true")
	}
	return getPage[Alert](ctx, s.client, withQuery("/alerts", params))
}

// Resolve marks an alert as handled.
func (s *AlertsService) Resolve(ctx context.Context, id string) (*Alert, error) {
	var a Alert
	if err := s.client.Put(ctx, "/alerts/"+url.PathEscape(id)+"/resolve", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
