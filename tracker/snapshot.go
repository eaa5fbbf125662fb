// Package tracker turns a rendered Tracker.gg Valorant match page into
// a typed MatchResult. It only ever sees raw HTML, never the browser,
// so everything here is unit-testable against synthetic fixtures.
package tracker

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for the match drawer layout. These are best-effort: when a
// selector stops matching after a site redesign, the affected fields
// fall back to their defaults instead of failing the scrape.
const (
	// RowSelector matches one scoreboard row. The scraper waits for at
	// least one of these to appear before handing over the DOM.
	RowSelector = ".st-content__item"

	selDrawer      = ".trn-match-drawer"
	selHeaderLabel = ".trn-match-drawer__header-label"
	selHeaderValue = ".trn-match-drawer__header-value"
	selTeam1Score  = ".trn-match-drawer__header-value--team-1"
	selTeam2Score  = ".trn-match-drawer__header-value--team-2"
	selName        = ".trn-ign__username"
	selTag         = ".trn-ign__discriminator"
	selCell        = ".st__item"
)

// Snapshot is a structured view over one rendered match page. It
// exposes exactly what extraction needs: header label/value pairs, the
// two team score elements and the scoreboard rows.
type Snapshot struct {
	doc *goquery.Document
}

// NewSnapshot parses rawHTML, scoped to the match drawer when present.
func NewSnapshot(rawHTML string) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(scopeToDrawer(rawHTML)))
	if err != nil {
		return nil, err
	}
	return &Snapshot{doc: doc}, nil
}

// HeaderLabels returns the trimmed header label texts in document order.
func (s *Snapshot) HeaderLabels() []string {
	var labels []string
	s.doc.Find(selHeaderLabel).Each(func(_ int, sel *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(sel.Text()))
	})
	return labels
}

// HeaderValues returns the trimmed header value texts in document order.
func (s *Snapshot) HeaderValues() []string {
	var values []string
	s.doc.Find(selHeaderValue).Each(func(_ int, sel *goquery.Selection) {
		values = append(values, strings.TrimSpace(sel.Text()))
	})
	return values
}

// TeamScoreText returns the raw text of the team-coloured score element
// for team 1 or 2, or "" when the element is absent.
func (s *Snapshot) TeamScoreText(team int) string {
	sel := selTeam1Score
	if team == 2 {
		sel = selTeam2Score
	}
	return strings.TrimSpace(s.doc.Find(sel).First().Text())
}

// Rows returns the scoreboard rows in document order.
func (s *Snapshot) Rows() []Row {
	var rows []Row
	s.doc.Find(RowSelector).Each(func(_ int, sel *goquery.Selection) {
		rows = append(rows, Row{sel: sel})
	})
	return rows
}

// Row is one scoreboard row's sub-elements.
type Row struct {
	sel *goquery.Selection
}

// NameText returns the raw display-name text of the row.
func (r Row) NameText() string {
	return r.sel.Find(selName).First().Text()
}

// TagText returns the raw Riot tag (discriminator) text of the row.
func (r Row) TagText() string {
	return r.sel.Find(selTag).First().Text()
}

// RowImage is an image element within a scoreboard row.
type RowImage struct {
	Src string
	Alt string
}

// Images returns every image in the row, in document order.
func (r Row) Images() []RowImage {
	var images []RowImage
	r.sel.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		images = append(images, RowImage{Src: src, Alt: alt})
	})
	return images
}

// Cells returns the trimmed stat cell texts of the row, in document
// order. Cell positions are schema-contractual; see the cell* constants.
func (r Row) Cells() []string {
	var cells []string
	r.sel.Find(selCell).Each(func(_ int, sel *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(sel.Text()))
	})
	return cells
}
