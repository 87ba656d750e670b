package apiclient

import (
	"context"
	"net/http"
)

// Contacts fetches the published contact info.
func (c *Client) Contacts(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/contacts", nil)
}

// SaveContacts replaces the published contact info. message becomes the
// change description; empty lets the backend pick one.
func (c *Client) SaveContacts(ctx context.Context, contact map[string]any, message string) (map[string]any, error) {
	body := map[string]any{"contact": contact}
	if message != "" {
		body["message"] = message
	}
	return c.do(ctx, http.MethodPost, "/api/v1/contacts/save", body)
}
