// Command trackscrape scrapes one Tracker.gg Valorant match page and
// prints the match statistics as JSON on stdout.
//
// Usage:
//
//	trackscrape [flags] <match-url> <name#tag>
//
// The match URL must start with http. The second argument is the Riot
// ID whose match outcome (won/lost) is derived. All diagnostics go to
// stderr; stdout carries only the JSON document.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/use-agent/trackscrape/config"
	"github.com/use-agent/trackscrape/models"
	"github.com/use-agent/trackscrape/scraper"
	"github.com/use-agent/trackscrape/tracker"
)

func main() {
	// ── 1. Load configuration (env first, flags override) ───────────
	cfg := config.Load()

	var (
		timeout  time.Duration
		headless bool
		verbose  bool
	)
	flag.DurationVar(&timeout, "timeout", cfg.Scraper.Timeout, "deadline for the whole scrape")
	flag.BoolVar(&headless, "headless", cfg.Browser.Headless, "run the browser headless")
	flag.BoolVar(&verbose, "v", false, "verbose (debug) logging")
	flag.Usage = usage
	flag.Parse()

	cfg.Scraper.Timeout = timeout
	cfg.Browser.Headless = headless
	if verbose {
		cfg.Log.Level = "debug"
	}

	// ── 2. Validate positional arguments ────────────────────────────
	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	matchURL, target := args[0], args[1]
	if !strings.HasPrefix(matchURL, "http") {
		fmt.Fprintf(os.Stderr, "trackscrape: match URL must start with http, got %q\n", matchURL)
		os.Exit(1)
	}
	if !strings.Contains(target, "#") {
		fmt.Fprintf(os.Stderr, "trackscrape: target must be a Riot ID in name#tag form, got %q\n", target)
		os.Exit(1)
	}

	// ── 3. Initialise structured logging on stderr ──────────────────
	// stdout is reserved for the JSON payload.
	initLogger(cfg.Log)

	// ── 4. Scrape, extract, emit ────────────────────────────────────
	if err := run(cfg, matchURL, target); err != nil {
		slog.Error("scrape failed", "url", matchURL, "error", err)
		os.Exit(1)
	}
}

// run performs one full scrape. The browser is released on every exit
// path, success or failure.
func run(cfg *config.Config, matchURL, target string) error {
	slog.Info("scraping match", "url", matchURL, "target", target)

	sc, err := scraper.New(cfg.Browser, cfg.Scraper)
	if err != nil {
		return err
	}
	defer sc.Close()

	rawHTML, err := sc.Fetch(context.Background(), matchURL, tracker.RowSelector)
	if err != nil {
		return err
	}
	slog.Debug("page acquired", "bytes", len(rawHTML))

	result, err := tracker.Extract(rawHTML, target)
	if err != nil {
		return err
	}
	slog.Info("match extracted",
		"map", result.Map,
		"players", len(result.Players),
		"won", result.Won,
	)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return models.NewScrapeError(
			models.ErrCodeExtraction,
			"failed to encode match result",
			err,
		)
	}
	fmt.Println(string(out))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: trackscrape [flags] <match-url> <name#tag>\n\nflags:\n")
	flag.PrintDefaults()
}

// initLogger configures slog based on the LogConfig. The handler always
// writes to stderr so logs never mix into the JSON output.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
