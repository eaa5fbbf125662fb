package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Browser BrowserConfig
	Scraper ScraperConfig
	Log     LogConfig
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// Proxy is the proxy URL used for both the HTTP probe and the browser.
	Proxy string
}

// ScraperConfig controls scraping behavior.
type ScraperConfig struct {
	// Timeout is the deadline for the whole fetch (probe + render + wait).
	Timeout time.Duration // default: 45s

	// NavigationTimeout is the max time for page.Navigate alone.
	NavigationTimeout time.Duration // default: 15s

	// BlockedResourceTypes lists resource types to block during render.
	// default: ["Image", "Stylesheet", "Font", "Media"]
	BlockedResourceTypes []string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:   envBoolOr("TRACKSCRAPE_HEADLESS", true),
			NoSandbox:  envBoolOr("TRACKSCRAPE_NO_SANDBOX", false),
			BrowserBin: os.Getenv("TRACKSCRAPE_BROWSER_BIN"),
			Proxy:      os.Getenv("TRACKSCRAPE_PROXY"),
		},
		Scraper: ScraperConfig{
			Timeout:           envDurationOr("TRACKSCRAPE_TIMEOUT", 45*time.Second),
			NavigationTimeout: envDurationOr("TRACKSCRAPE_NAV_TIMEOUT", 15*time.Second),
			BlockedResourceTypes: envSliceOr("TRACKSCRAPE_BLOCKED_RESOURCES", []string{
				"Image", "Stylesheet", "Font", "Media",
			}),
		},
		Log: LogConfig{
			Level:  envOr("TRACKSCRAPE_LOG_LEVEL", "info"),
			Format: envOr("TRACKSCRAPE_LOG_FORMAT", "text"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
