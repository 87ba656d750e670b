package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Communications lists contact-form submissions, optionally filtered by
// status ("unread", "read", "archived"). Empty status lists everything.
func (c *Client) Communications(ctx context.Context, status string) (map[string]any, error) {
	path := "/api/v1/communications"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// UpdateCommunicationStatus moves one submission to a new status.
func (c *Client) UpdateCommunicationStatus(ctx context.Context, id, status string) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/communications/"+url.PathEscape(id)+"/status", map[string]string{
		"status": status,
	})
}

// DeleteCommunication removes one submission.
func (c *Client) DeleteCommunication(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, http.MethodDelete, "/api/v1/communications/"+url.PathEscape(id), nil)
}
