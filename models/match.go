package models

// MatchResult is the JSON document emitted for one scraped match.
type MatchResult struct {
	// Map is the map name, or "Unknown" when the page value is not a
	// recognised map.
	Map string `json:"map"`

	// Mode is the game mode label from the page header; empty if absent.
	Mode string `json:"mode"`

	// Team1Score and Team2Score are the round wins per team.
	Team1Score int `json:"team1_score"`
	Team2Score int `json:"team2_score"`

	// RoundCount is always Team1Score + Team2Score.
	RoundCount int `json:"round_count"`

	// Won is true only when the target player's team scored strictly
	// more rounds than the other team. A missing target or a tied
	// match both report false.
	Won bool `json:"won"`

	// Players holds one record per scoreboard row, in document order.
	Players []PlayerRecord `json:"players"`
}

// PlayerRecord is one scoreboard row.
type PlayerRecord struct {
	// Name is the Riot ID in "name#tag" form.
	Name string `json:"name"`

	// Agent is the played character, or "?" if not found.
	Agent string `json:"agent"`

	// Team is "Red" or "Blue".
	Team string `json:"team"`

	// Tier is the competitive rank label, or "?" if not found.
	Tier string `json:"tier"`

	Score   int `json:"score"`
	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	// PlusMinus, DDA and KASTPct keep the cell text verbatim ("?" when
	// absent) since the source may carry signs or non-numeric values.
	PlusMinus string `json:"plus_minus"`
	DDA       string `json:"dda"`
	KASTPct   string `json:"kast_pct"`

	KDRatio float64 `json:"kd_ratio"`
	ADR     float64 `json:"adr"`
	HSPct   float64 `json:"hs_pct"`

	FirstKills  int `json:"fk"`
	FirstDeaths int `json:"fd"`
	MultiKills  int `json:"mk"`
}
