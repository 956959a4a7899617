package internal

import (
	"context"
	"net/url"
)

// AccountingService groups the accounting endpoints.
type AccountingService struct {
	client *Client
}

// Accounting returns the accounting service.
func (c *Client) Accounting() *AccountingService {
	return &AccountingService{client: c}
}

// Summary returns aggregated figures for a period. Empty bounds mean the
// backend's default period.
func (s *AccountingService) Summary(ctx context.Context, from, to string) (*AccountingSummary, error) {
	params := url.Values{}
	if from != "" {
		params.Set("from", from)
	}
	if to != "" {
		params.Set("to", to)
	}
	var summary AccountingSummary
	if err := s.client.Get(ctx, withQuery("/accounting/summary", params), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Entries lists ledger entries, optionally for one account.
func (s *AccountingService) Entries(ctx context.Context, account string) (Page[LedgerEntry], error) {
	params := url.Values{}
	if account != "" {
		params.Set("account", account)
	}
	return getPage[LedgerEntry](ctx, s.client, withQuery("/accounting/entries", params))
}

// CreateEntry records a manual ledger entry.
func (s *AccountingService) CreateEntry(ctx context.Context, e *LedgerEntry) (*LedgerEntry, error) {
	var created LedgerEntry
	if err := s.client.Post(ctx, "/accounting/entries", e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
