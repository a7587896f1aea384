package pitch

import "pitch-game/internal/shared"

// State is the root game container handed to every collaborator call: the
// table, the deck, the rounds played so far, the scoreboard, and whether the
// acting bidder's cards are currently revealed.
type State struct {
	Options    Options
	Deck       *shared.Deck
	Table      *shared.Table
	Rounds     []*Round
	Scoreboard *Scoreboard
	ShowCards  bool
}

// NewState builds a fresh game state around a seated table.
func NewState(table *shared.Table, opts Options) *State {
	return &State{
		Options:    opts,
		Deck:       shared.NewDeck(),
		Table:      table,
		Scoreboard: NewScoreboard(table.Teams()),
	}
}

// CurrentRound returns the round in progress, or nil before the first deal.
func (s *State) CurrentRound() *Round {
	if len(s.Rounds) == 0 {
		return nil
	}
	return s.Rounds[len(s.Rounds)-1]
}

// CurrentTrick returns the trick in progress, or nil.
func (s *State) CurrentTrick() *shared.Trick {
	round := s.CurrentRound()
	if round == nil {
		return nil
	}
	return round.CurrentTrick()
}

func (s *State) nextRound() *Round {
	round := NewRound(s.Table.Leader())
	s.Rounds = append(s.Rounds, round)
	return round
}

// BidderConfig names one seat and its decision source.
type BidderConfig struct {
	Name         string
	Intelligence shared.Intelligence
}

// NewBidders builds the seated bidders for a game. With a team count that
// divides the table evenly, bidders share teams round-robin (partners sit
// across from each other); otherwise every bidder scores alone.
func NewBidders(configs []BidderConfig, teamNames []string, opts Options) []*shared.Bidder {
	var teams []*shared.Team
	for i, name := range teamNames {
		if i >= opts.TeamCount {
			break
		}
		teams = append(teams, shared.NewTeam(name))
	}
	var bidders []*shared.Bidder
	for i, cfg := range configs {
		if i >= opts.BidderCount {
			break
		}
		var team *shared.Team
		if len(teams) > 0 && opts.BidderCount%len(teams) == 0 {
			team = teams[i%len(teams)]
		}
		bidders = append(bidders, shared.NewBidder(cfg.Name, team, cfg.Intelligence))
	}
	return bidders
}
