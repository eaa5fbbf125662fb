package tracker

import (
	"strings"

	"github.com/use-agent/trackscrape/models"
)

// knownMaps is the closed set of recognised map names. Anything else
// resolves to "Unknown" so layout drift cannot silently emit garbage.
var knownMaps = map[string]struct{}{
	"Ascent":   {},
	"Bind":     {},
	"Breeze":   {},
	"Fracture": {},
	"Haven":    {},
	"Icebox":   {},
	"Lotus":    {},
	"Pearl":    {},
	"Split":    {},
	"Sunset":   {},
	"Deadlock": {},
	"Abyss":    {},
}

// tierNames are the competitive rank fragments, low to high. An image
// whose alt text contains any of them is treated as the rank badge.
var tierNames = []string{
	"Iron", "Bronze", "Silver", "Gold", "Platinum",
	"Diamond", "Ascendant", "Immortal", "Radiant",
}

// teamSize is the number of players per side.
const teamSize = 5

// Stat cell positions within a scoreboard row. Cells 0-1 hold the
// agent and identity markup; stats start at 2.
const (
	cellScore       = 2
	cellKills       = 3
	cellDeaths      = 4
	cellAssists     = 5
	cellPlusMinus   = 6
	cellKDRatio     = 7
	cellDDA         = 8
	cellADR         = 9
	cellHSPct       = 10
	cellKASTPct     = 11
	cellFirstKills  = 12
	cellFirstDeaths = 13
	cellMultiKills  = 14
)

// Extract parses a rendered match page and derives the outcome for the
// target Riot ID ("name#tag").
//
// Acquisition failures are the scraper's concern; by the time Extract
// runs the only fatal case left is unparseable HTML. Individual cells
// that are missing or malformed resolve to defaults instead.
func Extract(rawHTML, target string) (*models.MatchResult, error) {
	snap, err := NewSnapshot(rawHTML)
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeExtraction,
			"failed to parse match page HTML",
			err,
		)
	}
	return extract(snap, target), nil
}

func extract(snap *Snapshot, target string) *models.MatchResult {
	result := &models.MatchResult{
		Map:     normalizeMap(first(snap.HeaderValues())),
		Mode:    first(snap.HeaderLabels()),
		Players: []models.PlayerRecord{},
	}

	result.Team1Score = leadingInt(snap.TeamScoreText(1))
	result.Team2Score = leadingInt(snap.TeamScoreText(2))
	result.RoundCount = result.Team1Score + result.Team2Score

	for _, row := range snap.Rows() {
		record, ok := extractRow(row)
		if !ok {
			continue
		}
		record.Team = teamForIndex(len(result.Players))
		result.Players = append(result.Players, record)
	}

	result.Won = won(FindTeam(result.Players, target), result.Team1Score, result.Team2Score)
	return result
}

// normalizeMap echoes members of the known-map set verbatim and maps
// everything else to "Unknown".
func normalizeMap(candidate string) string {
	if _, ok := knownMaps[candidate]; ok {
		return candidate
	}
	return "Unknown"
}

// extractRow builds a PlayerRecord from one scoreboard row. Rows
// without a usable identity are rejected outright: an identity-less
// record would break the outcome lookup downstream.
func extractRow(row Row) (models.PlayerRecord, bool) {
	name := strings.TrimSuffix(strings.TrimSpace(row.NameText()), "#")
	tag := strings.TrimPrefix(strings.TrimSpace(row.TagText()), "#")
	if name == "" || tag == "" {
		return models.PlayerRecord{}, false
	}

	cells := row.Cells()
	images := row.Images()

	return models.PlayerRecord{
		Name:        name + "#" + tag,
		Agent:       agentFor(images),
		Tier:        tierFor(images),
		Score:       intOr(cellAt(cells, cellScore), 0),
		Kills:       intOr(cellAt(cells, cellKills), 0),
		Deaths:      intOr(cellAt(cells, cellDeaths), 0),
		Assists:     intOr(cellAt(cells, cellAssists), 0),
		PlusMinus:   textOr(cellAt(cells, cellPlusMinus), "?"),
		KDRatio:     floatOr(cellAt(cells, cellKDRatio), 0),
		DDA:         textOr(cellAt(cells, cellDDA), "?"),
		ADR:         floatOr(cellAt(cells, cellADR), 0),
		HSPct:       floatOr(cellAt(cells, cellHSPct), 0),
		KASTPct:     textOr(cellAt(cells, cellKASTPct), "?"),
		FirstKills:  intOr(cellAt(cells, cellFirstKills), 0),
		FirstDeaths: intOr(cellAt(cells, cellFirstDeaths), 0),
		MultiKills:  intOr(cellAt(cells, cellMultiKills), 0),
	}, true
}

// cellAt returns the cell at position i, or "" when the row is short.
func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// agentFor finds the agent portrait (an image served from the agents
// asset path) and returns its alt text.
func agentFor(images []RowImage) string {
	for _, img := range images {
		if strings.Contains(img.Src, "agents") {
			if alt := strings.TrimSpace(img.Alt); alt != "" {
				return alt
			}
		}
	}
	return "?"
}

// tierFor finds the rank badge by alt text. First match in document
// order wins.
func tierFor(images []RowImage) string {
	for _, img := range images {
		for _, tier := range tierNames {
			if strings.Contains(img.Alt, tier) {
				return strings.TrimSpace(img.Alt)
			}
		}
	}
	return "?"
}

// teamForIndex assigns teams purely by position in the surviving row
// sequence: the first five rows are Red, the rest Blue. The page lists
// Red-team rows first; there is no per-row team marker to read, so
// this assumption is deliberately isolated here.
func teamForIndex(i int) string {
	if i < teamSize {
		return "Red"
	}
	return "Blue"
}

// FindTeam returns the team of the player whose Riot ID matches target
// exactly, or "Unknown" when no row matches.
func FindTeam(players []models.PlayerRecord, target string) string {
	for _, p := range players {
		if p.Name == target {
			return p.Team
		}
	}
	return "Unknown"
}

// won reports whether the given team's score strictly exceeds the
// other team's. Ties and an "Unknown" team both report false.
func won(team string, team1Score, team2Score int) bool {
	switch team {
	case "Red":
		return team1Score > team2Score
	case "Blue":
		return team2Score > team1Score
	default:
		return false
	}
}

// first returns the first element of a slice, or "" when empty.
func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
