package apiclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/monojitgoswami69/portfolio-admin-client/pkg/logger"
	"github.com/monojitgoswami69/portfolio-admin-client/pkg/storage"
)

// Login posts credentials and, when the response carries a token, persists
// it to the tab-scoped store along with the user info payload if present.
// The raw result is returned either way.
func (c *Client) Login(ctx context.Context, username, password string) (map[string]any, error) {
	result, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	if token, ok := extractToken(result); ok {
		if err := c.session.Set(ctx, storage.TokenKey, token); err != nil {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to store login token",
				logger.Error(err),
			)
		}
		if user, ok := result["user"]; ok {
			if raw, err := json.Marshal(user); err == nil {
				_ = c.session.Set(ctx, storage.UserKey, string(raw))
			}
		}
	}

	return result, nil
}

// Logout clears every known token and session location unconditionally.
// It never touches the network.
func (c *Client) Logout(ctx context.Context) {
	c.clearSession(ctx)
}

// IsLoggedIn reports whether a token is currently resolvable.
func (c *Client) IsLoggedIn(ctx context.Context) bool {
	_, ok := c.token(ctx)
	return ok
}

// UserInfo returns the stored user info payload from login, if any.
func (c *Client) UserInfo(ctx context.Context) (map[string]any, bool) {
	raw, ok := c.session.Get(ctx, storage.UserKey)
	if !ok {
		return nil, false
	}
	var user map[string]any
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return user, true
}

// extractToken finds the session token in a login response. The backend has
// moved the field over time, so candidates are checked in a fixed order:
// top-level "token" first, then "user.token".
func extractToken(result map[string]any) (string, bool) {
	if token, ok := result["token"].(string); ok && token != "" {
		return token, true
	}
	if user, ok := result["user"].(map[string]any); ok {
		if token, ok := user["token"].(string); ok && token != "" {
			return token, true
		}
	}
	return "", false
}
