package shared

import "slices"

// Play is a single card played by a bidder.
type Play struct {
	Bidder *Bidder
	Card   Card
}

// Trick is one exchange of plays within a round. The waste holds plays in
// the order they were made.
type Trick struct {
	Lead  *Bidder
	Waste []Play
}

// NewTrick creates a trick led by the given bidder.
func NewTrick(lead *Bidder) *Trick {
	return &Trick{Lead: lead}
}

// AddPlay appends a play to the waste. The first play fixes the lead suit.
func (t *Trick) AddPlay(bidder *Bidder, card Card) {
	t.Waste = append(t.Waste, Play{Bidder: bidder, Card: card})
}

// LeadSuit returns the suit of the first play, reporting false until a card
// has been played.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.Waste) == 0 {
		return NoSuit, false
	}
	return t.Waste[0].Card.Suit, true
}

// WinningPlay resolves the trick by weighted comparison against the lead and
// trump suits. The sort is stable, so among equally weighted cards the first
// one played wins. Reports false if nothing has been played.
func (t *Trick) WinningPlay(trump Suit) (Play, bool) {
	lead, ok := t.LeadSuit()
	if !ok {
		return Play{}, false
	}
	sorted := slices.Clone(t.Waste)
	slices.SortStableFunc(sorted, func(a, b Play) int {
		return -a.Card.CompareWeight(b.Card, lead, trump)
	})
	return sorted[0], true
}

// Cards returns the waste cards in play order.
func (t *Trick) Cards() []Card {
	cards := make([]Card, len(t.Waste))
	for i, p := range t.Waste {
		cards[i] = p.Card
	}
	return cards
}
