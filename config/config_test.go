package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if !cfg.Browser.Headless {
		t.Error("headless should default to true")
	}
	if cfg.Scraper.Timeout != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", cfg.Scraper.Timeout)
	}
	if len(cfg.Scraper.BlockedResourceTypes) != 4 {
		t.Errorf("blocked resource types = %v, want 4 defaults", cfg.Scraper.BlockedResourceTypes)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRACKSCRAPE_HEADLESS", "false")
	t.Setenv("TRACKSCRAPE_TIMEOUT", "90s")
	t.Setenv("TRACKSCRAPE_BLOCKED_RESOURCES", "Image, Font")
	t.Setenv("TRACKSCRAPE_LOG_FORMAT", "json")

	cfg := Load()

	if cfg.Browser.Headless {
		t.Error("headless override not applied")
	}
	if cfg.Scraper.Timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", cfg.Scraper.Timeout)
	}
	want := []string{"Image", "Font"}
	if len(cfg.Scraper.BlockedResourceTypes) != len(want) {
		t.Fatalf("blocked = %v, want %v", cfg.Scraper.BlockedResourceTypes, want)
	}
	for i, v := range want {
		if cfg.Scraper.BlockedResourceTypes[i] != v {
			t.Errorf("blocked[%d] = %q, want %q", i, cfg.Scraper.BlockedResourceTypes[i], v)
		}
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log format = %q, want json", cfg.Log.Format)
	}
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("TRACKSCRAPE_HEADLESS", "not-a-bool")
	t.Setenv("TRACKSCRAPE_TIMEOUT", "not-a-duration")

	cfg := Load()

	if !cfg.Browser.Headless {
		t.Error("unparseable bool should keep the default")
	}
	if cfg.Scraper.Timeout != 45*time.Second {
		t.Errorf("unparseable duration should keep the default, got %v", cfg.Scraper.Timeout)
	}
}
