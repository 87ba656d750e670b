package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// DashboardStats fetches the aggregate dashboard metrics.
func (c *Client) DashboardStats(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/dashboard/stats", nil)
}

// DashboardActivity fetches the recent activity log. A non-positive limit
// leaves the backend default in place.
func (c *Client) DashboardActivity(ctx context.Context, limit int) (map[string]any, error) {
	path := "/api/v1/dashboard/activity"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// DashboardWeekly fetches per-day hit counts for the trailing week.
func (c *Client) DashboardWeekly(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/dashboard/weekly", nil)
}
