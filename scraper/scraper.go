// Package scraper acquires one rendered match page. It owns the
// browser lifecycle, timeouts and anti-bot plumbing; it hands raw HTML
// to the tracker package and knows nothing about what is in it.
package scraper

import (
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/use-agent/trackscrape/config"
	"github.com/use-agent/trackscrape/models"
)

// Scraper manages the browser for a single scrape.
type Scraper struct {
	browser    *rod.Browser
	browserCfg config.BrowserConfig
	scraperCfg config.ScraperConfig
	probe      *httpProbe
}

// New launches a headless browser and connects to it.
func New(browserCfg config.BrowserConfig, scraperCfg config.ScraperConfig) (*Scraper, error) {
	l := launcher.New().
		Headless(browserCfg.Headless).
		NoSandbox(browserCfg.NoSandbox)

	if browserCfg.BrowserBin != "" {
		l = l.Bin(browserCfg.BrowserBin)
	}
	if browserCfg.Proxy != "" {
		l = l.Proxy(browserCfg.Proxy)
	}

	// ── Stealth flags ────────────────────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-features"), "AudioServiceOutOfProcess,TranslateUI")
	l.Set(flags.Flag("disable-popup-blocking"))
	l.Set(flags.Flag("disable-renderer-backgrounding"))
	l.Set(flags.Flag("disable-background-timer-throttling"))
	l.Set(flags.Flag("disable-backgrounding-occluded-windows"))
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to launch browser",
			err,
		)
	}
	slog.Debug("browser launched", "controlURL", controlURL)

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to connect to browser",
			err,
		)
	}

	return &Scraper{
		browser:    browser,
		browserCfg: browserCfg,
		scraperCfg: scraperCfg,
		probe:      newHTTPProbe(browserCfg.Proxy),
	}, nil
}

// Close kills the browser process. Call it on every exit path to
// prevent zombie Chrome processes.
func (s *Scraper) Close() {
	slog.Debug("closing browser")
	s.browser.MustClose()
}
