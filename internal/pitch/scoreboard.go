package pitch

import "pitch-game/internal/shared"

// TeamScore pairs a team with one of its round scores.
type TeamScore struct {
	Team  *shared.Team
	Score Score
}

type scoreboardRow struct {
	team   *shared.Team
	scores []Score
}

// Scoreboard accumulates one row of round scores per team for the lifetime
// of a game. Clear empties the rows without discarding team identities.
type Scoreboard struct {
	rows []*scoreboardRow
}

// NewScoreboard creates a board with one empty row per team.
func NewScoreboard(teams []*shared.Team) *Scoreboard {
	sb := &Scoreboard{}
	for _, team := range teams {
		sb.rows = append(sb.rows, &scoreboardRow{team: team})
	}
	return sb
}

// PushScores appends a score row for every team from the round's award sheet.
func (sb *Scoreboard) PushScores(calc *RoundCalculation, opts Options) {
	if calc == nil {
		return
	}
	for _, row := range sb.rows {
		row.scores = append(row.scores, ScoreTeam(row.team, calc, opts))
	}
}

// Clear empties every row for a brand-new game.
func (sb *Scoreboard) Clear() {
	for _, row := range sb.rows {
		row.scores = nil
	}
}

// RoundCount returns the number of scored rounds. Rounds abandoned without a
// bid never reach the board, so this may trail the rounds dealt.
func (sb *Scoreboard) RoundCount() int {
	if len(sb.rows) == 0 {
		return 0
	}
	return len(sb.rows[0].scores)
}

// ScoresForTeam returns the team's round scores in order.
func (sb *Scoreboard) ScoresForTeam(team *shared.Team) []Score {
	for _, row := range sb.rows {
		if row.team.Equal(team) {
			return row.scores
		}
	}
	return nil
}

// ScoresForRound returns every team's score for one round, or nil if any
// team has no score for that round yet.
func (sb *Scoreboard) ScoresForRound(index int) []TeamScore {
	var scores []TeamScore
	for _, row := range sb.rows {
		if index < 0 || index >= len(row.scores) {
			return nil
		}
		scores = append(scores, TeamScore{Team: row.team, Score: row.scores[index]})
	}
	return scores
}

// ScoreForTeamAndRound returns one team's score for one round.
func (sb *Scoreboard) ScoreForTeamAndRound(team *shared.Team, index int) (Score, bool) {
	scores := sb.ScoresForTeam(team)
	if index < 0 || index >= len(scores) {
		return Score{}, false
	}
	return scores[index], true
}

// ScoreTotal sums the team's net scores across all rounds.
func (sb *Scoreboard) ScoreTotal(team *shared.Team) int {
	total := 0
	for _, score := range sb.ScoresForTeam(team) {
		total += score.Net()
	}
	return total
}

// Winner returns the winning team once at least one team's total reaches the
// winning score. When several teams cross the threshold in the same round the
// tie breaks deterministically: highest total first, then highest last-round
// bid, then seating order.
func (sb *Scoreboard) Winner(opts Options) (*shared.Team, bool) {
	var winner *scoreboardRow
	winnerTotal := 0
	for _, row := range sb.rows {
		total := sb.ScoreTotal(row.team)
		if total < opts.WinningScore {
			continue
		}
		if winner == nil || total > winnerTotal ||
			(total == winnerTotal && lastBid(row) > lastBid(winner)) {
			winner = row
			winnerTotal = total
		}
	}
	if winner == nil {
		return nil, false
	}
	return winner.team, true
}

func lastBid(row *scoreboardRow) int {
	if len(row.scores) == 0 {
		return 0
	}
	return row.scores[len(row.scores)-1].Bid
}
