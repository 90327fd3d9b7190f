// Package restcountries provides a client for the restcountries.com v3.1 API.
package restcountries

import (
	"os"
	"time"
)

// DefaultBaseURL is the public restcountries v3.1 endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// Config holds configuration for the restcountries API client.
type Config struct {
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads restcountries configuration from environment variables,
// falling back to the public endpoint.
func LoadConfig() Config {
	base := os.Getenv("RESTCOUNTRIES_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
