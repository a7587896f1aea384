package pitch

import "pitch-game/internal/shared"

// tricksPerRound is the full hand: two passes of three cards each.
const tricksPerRound = 6

// Calculation is one team's raw take for a round: total game points and the
// notable trump cards in its pile.
type Calculation struct {
	TotalGame     int
	HighestTrump  *shared.Card
	LowestTrump   *shared.Card
	JackiestTrump *shared.Card
}

// TeamCard pairs a team with the card that earned it an award.
type TeamCard struct {
	Team *shared.Team
	Card shared.Card
}

// TeamBid pairs the bid-holding team with the bid value.
type TeamBid struct {
	Team  *shared.Team
	Value int
}

// GameTally records the greatest game-point total and every team tied for it.
type GameTally struct {
	Teams []*shared.Team
	Value int
}

// RoundCalculation is the round's award sheet: who held the bid and who takes
// High, Low, Jack and Game.
type RoundCalculation struct {
	GreatestBid   TeamBid
	GreatestGame  *GameTally
	HighestTrump  *TeamCard
	LowestTrump   *TeamCard
	JackiestTrump *TeamCard
}

// Score is one team's row for one round: the bid it was held to and the four
// award flags, each 0 or 1.
type Score struct {
	Bid  int
	High int
	Low  int
	Jack int
	Game int
}

// In returns the points the team actually captured.
func (s Score) In() int {
	return s.High + s.Low + s.Jack + s.Game
}

// Net returns the round's net score: the captured points if they cover the
// team's bid, otherwise the set-back penalty of the full bid amount.
func (s Score) Net() int {
	if in := s.In(); in >= s.Bid {
		return in
	}
	return -s.Bid
}

// Calculate scans a team's won-card pile against the trump suit. A second
// jack of trump cannot exist in one deck, so finding one is a fatal
// data-integrity failure.
func Calculate(cards []shared.Card, trump shared.Suit) (Calculation, error) {
	var calc Calculation
	for _, card := range cards {
		calc.TotalGame += card.Rank.Game()
		if card.Suit.Compare(trump) != 0 {
			continue
		}
		if card.Rank.Compare(shared.Jack) == 0 {
			if calc.JackiestTrump != nil {
				return Calculation{}, ErrExtraJack
			}
			jack := card
			calc.JackiestTrump = &jack
		}
		if calc.LowestTrump == nil || card.Rank.Compare(calc.LowestTrump.Rank) < 0 {
			low := card
			calc.LowestTrump = &low
		}
		if calc.HighestTrump == nil || card.Rank.Compare(calc.HighestTrump.Rank) > 0 {
			high := card
			calc.HighestTrump = &high
		}
	}
	return calc, nil
}

// CalculateRound scores a finished round against the table's teams. It
// returns nil without error while the round is incomplete: scoring only
// happens once trump is set, a winning bid exists, and all six tricks hold a
// play from every seat.
func CalculateRound(round *Round, table *shared.Table) (*RoundCalculation, error) {
	if round.Trump == shared.NoSuit || round.Bid == nil || len(round.Tricks) < tricksPerRound {
		return nil, nil
	}
	for _, trick := range round.Tricks[:tricksPerRound] {
		if len(trick.Waste) < table.Len() {
			return nil, nil
		}
	}

	roundCalc := &RoundCalculation{
		GreatestBid: TeamBid{Team: round.Bid.Bidder.Team, Value: round.Bid.Value},
	}
	for _, team := range table.Teams() {
		calc, err := Calculate(team.Cards, round.Trump)
		if err != nil {
			return nil, err
		}
		if roundCalc.GreatestGame == nil || roundCalc.GreatestGame.Value < calc.TotalGame {
			roundCalc.GreatestGame = &GameTally{Teams: []*shared.Team{team}, Value: calc.TotalGame}
		} else if roundCalc.GreatestGame.Value == calc.TotalGame {
			roundCalc.GreatestGame.Teams = append(roundCalc.GreatestGame.Teams, team)
		}
		if calc.HighestTrump != nil &&
			(roundCalc.HighestTrump == nil || roundCalc.HighestTrump.Card.Rank.Compare(calc.HighestTrump.Rank) < 0) {
			roundCalc.HighestTrump = &TeamCard{Team: team, Card: *calc.HighestTrump}
		}
		if calc.LowestTrump != nil &&
			(roundCalc.LowestTrump == nil || roundCalc.LowestTrump.Card.Rank.Compare(calc.LowestTrump.Rank) > 0) {
			roundCalc.LowestTrump = &TeamCard{Team: team, Card: *calc.LowestTrump}
		}
		if calc.JackiestTrump != nil {
			if roundCalc.JackiestTrump != nil {
				return nil, ErrExtraJack
			}
			roundCalc.JackiestTrump = &TeamCard{Team: team, Card: *calc.JackiestTrump}
		}
	}
	return roundCalc, nil
}

// ScoreTeam derives one team's score row from the round's award sheet. A
// game-point tie only pays out when the tied-game option is enabled.
func ScoreTeam(team *shared.Team, calc *RoundCalculation, opts Options) Score {
	var score Score
	if calc.GreatestBid.Team.Equal(team) {
		score.Bid = calc.GreatestBid.Value
	}
	if calc.HighestTrump != nil && calc.HighestTrump.Team.Equal(team) {
		score.High = 1
	}
	if calc.LowestTrump != nil && calc.LowestTrump.Team.Equal(team) {
		score.Low = 1
	}
	if calc.JackiestTrump != nil && calc.JackiestTrump.Team.Equal(team) {
		score.Jack = 1
	}
	if calc.GreatestGame != nil &&
		(len(calc.GreatestGame.Teams) < 2 || opts.IsScoreTiedGamePointsEnabled) {
		for _, winner := range calc.GreatestGame.Teams {
			if winner.Equal(team) {
				score.Game = 1
				break
			}
		}
	}
	return score
}
