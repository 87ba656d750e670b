package apiclient

import (
	"context"
	"net/http"
)

// SystemInstructions fetches the assistant system instructions.
func (c *Client) SystemInstructions(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/system-instructions", nil)
}

// SaveSystemInstructions replaces the assistant system instructions.
func (c *Client) SaveSystemInstructions(ctx context.Context, content string) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/system-instructions/save", map[string]string{
		"content": content,
	})
}
