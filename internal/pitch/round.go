package pitch

import "pitch-game/internal/shared"

// Bid is a bidder's committed claim for the round, or a skip.
type Bid struct {
	Bidder *shared.Bidder
	Value  int
	Skip   bool
}

// Round is one complete deal-bid-play cycle: a leader, a trump suit fixed by
// the first card played, the winning bid if any, and the tricks in order.
type Round struct {
	Leader *shared.Bidder
	Trump  shared.Suit
	Bid    *Bid
	Tricks []*shared.Trick
}

// NewRound starts a round led by the given bidder.
func NewRound(leader *shared.Bidder) *Round {
	return &Round{Leader: leader}
}

// NextTrick appends and returns a fresh trick led by the given bidder.
func (r *Round) NextTrick(lead *shared.Bidder) *shared.Trick {
	trick := shared.NewTrick(lead)
	r.Tricks = append(r.Tricks, trick)
	return trick
}

// CurrentTrick returns the trick in progress, or nil before the first one.
func (r *Round) CurrentTrick() *shared.Trick {
	if len(r.Tricks) == 0 {
		return nil
	}
	return r.Tricks[len(r.Tricks)-1]
}
