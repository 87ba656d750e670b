package apiclient

import "time"

// Config holds the client settings, loadable from the environment via
// the config package.
type Config struct {
	// BaseURL is the root of the backend, without a trailing slash.
	BaseURL string `env:"ADMIN_API_BASE_URL" envDefault:"http://localhost:8000"`
	// Timeout bounds every request.
	Timeout time.Duration `env:"ADMIN_API_TIMEOUT" envDefault:"30s"`
	// Demo seeds the session store with the demo sentinel token at
	// construction so every call is locally simulated.
	Demo bool `env:"ADMIN_API_DEMO" envDefault:"false"`
}
