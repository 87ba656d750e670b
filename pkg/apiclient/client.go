package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/monojitgoswami69/portfolio-admin-client/pkg/bus"
	"github.com/monojitgoswami69/portfolio-admin-client/pkg/logger"
	"github.com/monojitgoswami69/portfolio-admin-client/pkg/storage"
)

// newTokenHeader carries the sliding-expiration replacement token the
// backend issues on authenticated calls nearing expiry.
const newTokenHeader = "X-New-Token"

// maxResponseBody caps how much of a response is read (4 MiB).
const maxResponseBody = 4 << 20

// SessionExpired is published when the backend answers 401 and the stored
// session has been torn down. Consumers force a redirect to login.
type SessionExpired struct {
	Reason string
}

// Client is the single choke point for all outbound calls to the admin
// backend. It attaches bearer auth, substitutes canned responses in demo
// mode, adopts rolling replacement tokens, and normalizes failures into
// *APIError. Response payloads are returned as decoded JSON, unreshaped.
type Client struct {
	baseURL    string
	http       *http.Client
	session    storage.Store
	persistent storage.Store
	expired    bus.Broadcaster[SessionExpired]
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, e.g. for tests or proxies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithPersistentStore adds a second token location consulted after the
// tab-scoped store, mirroring "remember me" storage that survives restarts.
func WithPersistentStore(s storage.Store) Option {
	return func(c *Client) {
		c.persistent = s
	}
}

// WithSessionExpiredBroadcaster sets the broadcaster notified on 401.
func WithSessionExpiredBroadcaster(b bus.Broadcaster[SessionExpired]) Option {
	return func(c *Client) {
		c.expired = b
	}
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client over the given tab-scoped session store.
func New(cfg Config, session storage.Store, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("apiclient"))

	if cfg.Demo {
		_ = session.Set(context.Background(), storage.TokenKey, DemoToken)
	}

	return c
}

// token resolves the bearer token, tab-scoped storage first, then the
// persistent store when one is wired.
func (c *Client) token(ctx context.Context) (string, bool) {
	if token, ok := c.session.Get(ctx, storage.TokenKey); ok && token != "" {
		return token, true
	}
	if c.persistent != nil {
		if token, ok := c.persistent.Get(ctx, storage.TokenKey); ok && token != "" {
			return token, true
		}
	}
	return "", false
}

// do performs a JSON request against path and returns the decoded body.
func (c *Client) do(ctx context.Context, method, path string, body any) (map[string]any, error) {
	token, _ := c.token(ctx)
	if token == DemoToken {
		return c.demoResponse(ctx, method, path)
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(ctx, req)
}

// doMultipart performs a multipart upload. The content type is taken from
// the multipart writer so the transport keeps its boundary parameter.
func (c *Client) doMultipart(ctx context.Context, path string, form func(*multipart.Writer) error) (map[string]any, error) {
	token, _ := c.token(ctx)
	if token == DemoToken {
		return c.demoResponse(ctx, http.MethodPost, path)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := form(w); err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(ctx, req)
}

// send executes the request and applies the shared response contract:
// transport failures become status-0 errors, replacement tokens are adopted,
// 401 tears down the session, non-2xx becomes *APIError, 2xx is decoded
// as-is.
func (c *Client) send(ctx context.Context, req *http.Request) (map[string]any, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Status: 0}
	}
	defer func() { _ = resp.Body.Close() }()

	c.adoptRenewedToken(ctx, resp)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &APIError{Message: err.Error(), Status: 0}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.failure(ctx, resp.StatusCode, raw)
	}

	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return result, nil
}

// adoptRenewedToken silently replaces the stored token when the backend
// rotates it, extending the session without re-login.
func (c *Client) adoptRenewedToken(ctx context.Context, resp *http.Response) {
	renewed := resp.Header.Get(newTokenHeader)
	if renewed == "" {
		return
	}
	if err := c.session.Set(ctx, storage.TokenKey, renewed); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to store renewed token",
			logger.Error(err),
		)
	}
}

// failure builds the typed error for a non-2xx response. A 401 additionally
// clears the stored session and publishes the session-expired signal.
func (c *Client) failure(ctx context.Context, status int, raw []byte) error {
	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			payload = map[string]any{}
		}
	}

	if status == http.StatusUnauthorized {
		c.clearSession(ctx)
		if c.expired != nil {
			_ = c.expired.Publish(ctx, SessionExpired{Reason: "unauthorized"})
		}
	}

	message := fmt.Sprintf("HTTP %d", status)
	if detail, ok := payload["detail"].(string); ok && detail != "" {
		message = detail
	}

	return &APIError{Message: message, Status: status, Payload: payload}
}

// clearSession removes the token and user info from every known location.
func (c *Client) clearSession(ctx context.Context) {
	c.session.Remove(ctx, storage.TokenKey)
	c.session.Remove(ctx, storage.UserKey)
	if c.persistent != nil {
		c.persistent.Remove(ctx, storage.TokenKey)
		c.persistent.Remove(ctx, storage.UserKey)
	}
}
