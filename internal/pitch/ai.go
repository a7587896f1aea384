package pitch

import (
	"slices"

	"pitch-game/internal/shared"
)

// AI is the decision capability of an artificial bidder. Both decisions
// consume the same state the human collaborators see.
type AI interface {
	DecideBid(bidder *shared.Bidder, state *State) Bid
	DecidePlay(bidder *shared.Bidder, state *State) shared.Card
}

// SelectIntelligence returns the decision source for an intelligence kind,
// or nil for a human seat (humans decide through the host's collaborator).
func SelectIntelligence(kind shared.Intelligence) AI {
	switch kind {
	case shared.Artificial:
		return babyAI{}
	default:
		return nil
	}
}

// babyAI reproduces the documented heuristic: rate each suit held, outbid by
// one when a suit rates above the running bid, and lead with the heaviest
// card of the chosen suit.
type babyAI struct{}

type suitWorth struct {
	suit  shared.Suit
	worth int
}

// DecideBid bids one over the running bid when some suit is worth more than
// it and the table's bid ceiling allows, takes the forced bid of two as the
// last bidder when skipping out is disabled, and otherwise skips.
func (ai babyAI) DecideBid(bidder *shared.Bidder, state *State) Bid {
	round := state.CurrentRound()
	currentBid := 1
	if round.Bid != nil {
		currentBid = round.Bid.Value
	}
	highest := 4
	if state.Options.IsBidFiveEnabled {
		highest = 5
	}

	worths := ai.worthBySuit(bidder.Hand)
	for _, w := range worths {
		if w.worth > currentBid && currentBid < highest {
			return Bid{Bidder: bidder, Value: currentBid + 1}
		}
	}
	if state.Table.Last().Equal(bidder) && currentBid < 2 && !state.Options.IsBidNoneEnabled {
		return Bid{Bidder: bidder, Value: 2}
	}
	return Bid{Bidder: bidder, Skip: true}
}

// DecidePlay weighs the hand against the trick's lead suit and the round's
// trump (or the suit this bidder would establish as trump) and plays the
// heaviest card.
func (ai babyAI) DecidePlay(bidder *shared.Bidder, state *State) shared.Card {
	round := state.CurrentRound()
	trick := round.CurrentTrick()

	trump := round.Trump
	if trump == shared.NoSuit {
		// This bidder is establishing trump: pick the highest-worth suit.
		worths := ai.worthBySuit(bidder.Hand)
		slices.SortFunc(worths, func(a, b suitWorth) int { return b.worth - a.worth })
		trump = worths[0].suit
	}
	lead, ok := trick.LeadSuit()
	if !ok {
		lead = trump
	}

	weighted := shared.NoSuit
	if state.Options.IsAllowTrumpWhenCanFollowSuitEnabled {
		weighted = trump
	}
	hand := slices.Clone(bidder.Hand)
	slices.SortFunc(hand, func(a, b shared.Card) int {
		return -a.CompareWeight(b, lead, weighted)
	})
	return hand[0]
}

// worthBySuit rates each suit present in the hand from 1 to 5 using fixed
// thresholds on suit length and face-card holdings.
func (babyAI) worthBySuit(hand []shared.Card) []suitWorth {
	var worths []suitWorth
	for _, suit := range shared.Suits {
		var length int
		var jack, queen, king, ace bool
		for _, c := range hand {
			if c.Suit != suit {
				continue
			}
			length++
			switch c.Rank {
			case shared.Jack:
				jack = true
			case shared.Queen:
				queen = true
			case shared.King:
				king = true
			case shared.Ace:
				ace = true
			}
		}
		if length == 0 {
			continue
		}
		worth := 1
		switch {
		case ace && king && queen && length > 5:
			worth = 5
		case jack && (king || ace) && length > 3:
			worth = 4
		case (ace || king || queen) && ((jack && length > 2) || length > 3):
			worth = 3
		case ((ace || king) && length > 1) || ((ace || king || queen) && length > 2):
			worth = 2
		}
		worths = append(worths, suitWorth{suit: suit, worth: worth})
	}
	return worths
}
