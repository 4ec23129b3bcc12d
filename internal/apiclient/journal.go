package apiclient

import (
	"context"
	"net/url"

	"github.com/tijaniyah/companion/internal/domain/model"
	"github.com/tijaniyah/companion/internal/ports"
)

var _ ports.JournalAPI = (*Client)(nil)

func (c *Client) ListJournal(ctx context.Context) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := c.get(ctx, "/journal", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetJournalEntry(ctx context.Context, id string) (model.JournalEntry, error) {
	var e model.JournalEntry
	err := c.get(ctx, journalPath(id), nil, &e)
	return e, err
}

func (c *Client) CreateJournalEntry(ctx context.Context, req model.CreateJournalEntryRequest) (model.JournalEntry, error) {
	var e model.JournalEntry
	err := c.post(ctx, "/journal", req, &e)
	return e, err
}

func (c *Client) UpdateJournalEntry(ctx context.Context, id string, req model.UpdateJournalEntryRequest) (model.JournalEntry, error) {
	var e model.JournalEntry
	err := c.patch(ctx, journalPath(id), req, &e)
	return e, err
}

func (c *Client) DeleteJournalEntry(ctx context.Context, id string) error {
	return c.del(ctx, journalPath(id))
}

func journalPath(id string) string { return "/journal/" + url.PathEscape(id) }
