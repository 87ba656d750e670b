package apiclient

import (
	"context"
	"net/http"
)

// Health reports whether the backend answers its health check. Errors are
// swallowed: an unreachable backend is simply unhealthy.
func (c *Client) Health(ctx context.Context) bool {
	result, err := c.do(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return false
	}
	status, _ := result["status"].(string)
	return status == "ok"
}
