package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/use-agent/trackscrape/models"
	"github.com/ysmood/gson"
)

// Fetch retrieves the fully rendered match page and returns its HTML.
// waitSelector names the element that must be present (at least once)
// before the DOM is considered ready for extraction.
//
// Lifecycle:
//
//  1. Timeout guard     – hard deadline on the entire operation
//  2. HTTP probe        – Chrome-TLS-fingerprint fetch; skips the
//     browser entirely if the static HTML already carries the content
//  3. Create page       – one tab, closed on return
//  4. Stealth injection – mask navigator.webdriver etc. (before navigation!)
//  5. Extra headers     – Google search Referer
//  6. Hijack mount      – block images/CSS/fonts/media (before navigation!)
//  7. Context binding   – propagate timeout to all Rod operations
//  8. Navigate + wait   – navigation, then wait for waitSelector
//  9. Extract           – page.HTML()
//
// Steps 4-6 must happen before step 8: stealth JS and resource blocking
// only take effect for navigations installed before them.
func (s *Scraper) Fetch(ctx context.Context, targetURL, waitSelector string) (string, error) {
	// ── 1. Timeout guard ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(ctx, s.scraperCfg.Timeout)
	defer cancel()

	// ── 2. HTTP probe ─────────────────────────────────────────────────
	// Tracker.gg normally serves an SPA shell to plain HTTP clients, so
	// this almost always falls through to the browser. When the site
	// server-renders (or a cached page is replayed), it saves the
	// entire render.
	if body, err := s.probe.fetch(ctx, targetURL); err == nil {
		if !needsBrowser(body) && hasElement(body, waitSelector) {
			slog.Debug("static HTML already carries scoreboard, skipping browser")
			return string(body), nil
		}
		slog.Debug("static HTML incomplete, escalating to browser", "bytes", len(body))
	} else {
		slog.Debug("http probe failed, escalating to browser", "error", err)
	}

	// ── 3. Create page ────────────────────────────────────────────────
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to create browser page",
			err,
		)
	}
	defer func() { _ = page.Close() }()

	// ── 4. Stealth injection ──────────────────────────────────────────
	if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
		slog.Warn("stealth injection failed, proceeding without stealth",
			"error", evalErr,
		)
	}

	// ── 5. Extra headers (Google Referer) ─────────────────────────────
	if u, parseErr := url.Parse(targetURL); parseErr == nil {
		referer := "https://www.google.com/search?q=" + url.QueryEscape(u.Hostname())
		_ = proto.NetworkSetExtraHTTPHeaders{
			Headers: proto.NetworkHeaders{"Referer": gson.New(referer)},
		}.Call(page)
	}

	// ── 6. Mount hijack router (blocks Image/Stylesheet/Font/Media + ads)
	router := setupHijack(page, s.scraperCfg.BlockedResourceTypes, true)
	if router != nil {
		defer func() { _ = router.Stop() }()
	}

	// ── 7. Bind request context to page ───────────────────────────────
	p := page.Context(ctx)

	// ── 8. Navigate + wait for the scoreboard ─────────────────────────
	navCtx, navCancel := context.WithTimeout(ctx, s.scraperCfg.NavigationTimeout)
	if navErr := page.Context(navCtx).Navigate(targetURL); navErr != nil {
		navCancel()
		return "", categorizeError(navErr, "navigation to match page failed")
	}
	navCancel()

	if waitErr := p.WaitElementsMoreThan(waitSelector, 0); waitErr != nil {
		return "", categorizeError(waitErr, "scoreboard did not appear")
	}
	// Rows stream in after the first one renders; wait for the DOM to
	// settle before snapshotting.
	if stableErr := p.WaitDOMStable(300*time.Millisecond, 0.1); stableErr != nil {
		slog.Debug("WaitDOMStable did not converge, proceeding with current DOM",
			"error", stableErr,
		)
	}

	// ── 9. Extract rendered HTML ──────────────────────────────────────
	rawHTML, htmlErr := p.HTML()
	if htmlErr != nil {
		return "", categorizeError(htmlErr, "failed to extract page HTML")
	}
	return rawHTML, nil
}

// categorizeError wraps raw errors into typed ScrapeErrors so main can
// report timeouts distinctly from navigation failures.
func categorizeError(err error, msg string) *models.ScrapeError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeTimeout, "scrape canceled", err)
	default:
		return models.NewScrapeError(models.ErrCodeNavigation, msg, err)
	}
}
