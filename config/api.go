package config

import (
	"net/http"
	"strings"
	"time"
)

// APIConfig configures the backend API client.
type APIConfig struct {
	// BaseURL is the backend origin; every endpoint is a path under it.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// RetryLimit is the number of retries after the first attempt.
	RetryLimit int `env:"RETRY_LIMIT" envDefault:"2"`

	// RetryBackoff is the fixed wait between attempts.
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" envDefault:"1s"`

	// RetryStatuses are the response codes retried as transient server errors.
	RetryStatuses []int `env:"RETRY_STATUSES" envDefault:"503" envSeparator:","`

	// AuthFailureStatuses are the response codes that evict the bearer token.
	AuthFailureStatuses []int `env:"AUTH_FAILURE_STATUSES" envDefault:"401" envSeparator:","`
}

// Sanitize applies guardrails to API configuration values.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.RetryLimit < 0 {
		c.RetryLimit = 0
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = time.Second
	}
	c.RetryStatuses = validStatuses(c.RetryStatuses, http.StatusServiceUnavailable)
	c.AuthFailureStatuses = validStatuses(c.AuthFailureStatuses, http.StatusUnauthorized)
}

func validStatuses(in []int, fallback int) []int {
	out := in[:0]
	for _, s := range in {
		if s >= 400 && s <= 599 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []int{fallback}
	}
	return out
}
