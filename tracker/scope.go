package tracker

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// scopeToDrawer narrows rawHTML to the match drawer subtree so the
// snapshot never matches leaked header/value elements elsewhere on the
// page (related-match widgets, nav bars).
//
// If the drawer selector does not match, the original rawHTML is
// returned unchanged so extraction still has something to work with.
func scopeToDrawer(rawHTML string) string {
	sel, err := cascadia.Parse(selDrawer)
	if err != nil {
		return rawHTML
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	matches := cascadia.QueryAll(doc, sel)
	if len(matches) == 0 {
		return rawHTML
	}

	var buf bytes.Buffer
	for _, node := range matches {
		if err := html.Render(&buf, node); err != nil {
			return rawHTML
		}
	}
	return buf.String()
}
