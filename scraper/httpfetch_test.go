package scraper

import (
	"strings"
	"testing"
)

func TestNeedsBrowser_SPAShell(t *testing.T) {
	body := []byte(`<html><head><title>VALORANT Stats</title></head><body><div id="app"></div><script src="/bundle.js"></script></body></html>`)
	if !needsBrowser(body) {
		t.Error("empty SPA shell should require a browser")
	}
}

func TestNeedsBrowser_NoscriptWarning(t *testing.T) {
	filler := strings.Repeat("some visible filler text ", 20)
	body := []byte(`<html><body><noscript>Please enable JavaScript to view this site.</noscript><p>` + filler + `</p></body></html>`)
	if !needsBrowser(body) {
		t.Error("noscript JS warning should require a browser")
	}
}

func TestNeedsBrowser_ServerRendered(t *testing.T) {
	paragraph := strings.Repeat("server rendered scoreboard content ", 20)
	body := []byte(`<html><body><main><p>` + paragraph + `</p></main></body></html>`)
	if needsBrowser(body) {
		t.Error("content-rich page should not require a browser")
	}
}

func TestHasElement(t *testing.T) {
	body := []byte(`<html><body><div class="st-content__item">row</div></body></html>`)

	if !hasElement(body, ".st-content__item") {
		t.Error("expected selector to match")
	}
	if hasElement(body, ".missing") {
		t.Error("expected selector miss")
	}
	if hasElement(body, "][bad") {
		t.Error("invalid selector should report false, not panic")
	}
}

func TestIsAdDomain(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"doubleclick.net", true},
		{"pagead2.googlesyndication.com", true}, // parent-domain match
		{"NitroPay.com", true},                  // case-insensitive
		{"tracker.gg", false},
		{"trackercdn.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := isAdDomain(tt.host); got != tt.want {
				t.Errorf("isAdDomain(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}
