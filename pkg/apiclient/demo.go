package apiclient

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// DemoToken is the reserved sentinel. A client resolving this token runs in
// demo mode: every call returns a canned payload after a short randomized
// delay and no real network request is made.
const DemoToken = "demo"

// Demo responses wait 200-500 ms to preserve realistic loading-state UX.
const (
	demoDelayBase   = 200 * time.Millisecond
	demoDelayJitter = 300 * time.Millisecond
)

//go:embed demo_fixtures.yaml
var demoFixturesYAML []byte

var (
	demoFixtures     map[string]map[string]any
	demoFixturesOnce sync.Once
)

// loadDemoFixtures parses the embedded fixtures once, normalizing them
// through JSON so payload types match what a live response would decode to.
func loadDemoFixtures() map[string]map[string]any {
	demoFixturesOnce.Do(func() {
		var parsed map[string]map[string]any
		if err := yaml.Unmarshal(demoFixturesYAML, &parsed); err != nil {
			panic(fmt.Errorf("invalid demo fixtures: %w", err))
		}
		raw, err := json.Marshal(parsed)
		if err != nil {
			panic(fmt.Errorf("invalid demo fixtures: %w", err))
		}
		if err := json.Unmarshal(raw, &demoFixtures); err != nil {
			panic(fmt.Errorf("invalid demo fixtures: %w", err))
		}
	})
	return demoFixtures
}

// demoResponse returns the canned payload for the endpoint family of path
// after a randomized delay. The payload is deep-copied so callers can
// mutate results freely.
func (c *Client) demoResponse(ctx context.Context, method, path string) (map[string]any, error) {
	delay := demoDelayBase + time.Duration(rand.Int63n(int64(demoDelayJitter)))
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	fixture, ok := loadDemoFixtures()[demoFamily(method, path)]
	if !ok {
		fixture = map[string]any{"status": "success"}
	}

	raw, err := json.Marshal(fixture)
	if err != nil {
		return nil, fmt.Errorf("copy demo fixture: %w", err)
	}
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("copy demo fixture: %w", err)
	}
	return result, nil
}

// demoFamily maps a request onto its fixture key. Reads resolve to the
// family payload; mutations resolve to a generic success acknowledgment.
func demoFamily(method, path string) string {
	rest := strings.TrimPrefix(path, "/api/v1/")
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest = rest[:i]
	}

	switch {
	case rest == "health":
		return "health"
	case rest == "auth/login":
		return "login"
	case rest == "dashboard/stats":
		return "dashboard_stats"
	case strings.HasPrefix(rest, "dashboard/activity"):
		return "dashboard_activity"
	case rest == "dashboard/weekly":
		return "dashboard_weekly"
	case rest == "knowledge/categories":
		return "knowledge_categories"
	case strings.HasPrefix(rest, "knowledge"):
		if strings.HasSuffix(rest, "/save") {
			return "mutation"
		}
		return "knowledge"
	case strings.HasPrefix(rest, "system-instructions"):
		if strings.HasSuffix(rest, "/save") {
			return "mutation"
		}
		return "system_instructions"
	case strings.HasPrefix(rest, "projects"):
		if rest != "projects" {
			return "mutation"
		}
		return "projects"
	case strings.HasPrefix(rest, "contacts"):
		if strings.HasSuffix(rest, "/save") {
			return "mutation"
		}
		return "contacts"
	case strings.HasPrefix(rest, "communications"):
		if method == http.MethodGet {
			return "communications"
		}
		return "mutation"
	default:
		return "mutation"
	}
}
