package database

// GameResult records one finished game of pitch.
type GameResult struct {
	ID           string `json:"id"`
	CreatedAt    string `json:"created_at"`
	WinningTeam  string `json:"winning_team"`
	RoundsPlayed int    `json:"rounds_played"`
	// Players is a comma-joined list of bidder names in seat order.
	Players string `json:"players"`
	// Totals is a comma-joined list of "team=net" entries.
	Totals string `json:"totals"`
}
