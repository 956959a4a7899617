package internal

import "context"

// SubscriptionService groups the billing endpoints.
type SubscriptionService struct {
	client *Client
}

// Subscription returns the subscription service.
func (c *Client) Subscription() *SubscriptionService {
	return &SubscriptionService{client: c}
}

// Status returns the tenant's current billing state.
func (s *SubscriptionService) Status(ctx context.Context) (*SubscriptionStatus, error) {
	var status SubscriptionStatus
	if err := s.client.Get(ctx, "/subscription", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Plans lists available subscription tiers.
func (s *SubscriptionService) Plans(ctx context.Context) (Page[Plan], error) {
	return getPage[Plan](ctx, s.client, "/subscription/plans")
}

// Upgrade switches the tenant to another plan.
func (s *SubscriptionService) Upgrade(ctx context.Context, planID string) (*SubscriptionStatus, error) {
	var status SubscriptionStatus
	body := map[string]string{"plan_id": planID}
	if err := s.client.Post(ctx, "/subscription/upgrade", body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
