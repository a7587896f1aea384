package shared

import (
	"slices"

	"github.com/google/uuid"
)

// Intelligence selects the decision source for a bidder.
type Intelligence int

const (
	Human Intelligence = iota
	Artificial
)

func (i Intelligence) String() string {
	switch i {
	case Human:
		return "human"
	case Artificial:
		return "artificial"
	default:
		return "unknown"
	}
}

// Bidder represents a seated player. A bidder holds a hand of cards and a
// shared reference to the team it scores for.
type Bidder struct {
	ID           string
	Name         string
	Team         *Team
	Intelligence Intelligence
	Hand         []Card
}

// NewBidder creates a bidder. A nil team puts the bidder on a team of its own.
func NewBidder(name string, team *Team, intelligence Intelligence) *Bidder {
	if team == nil {
		team = NewTeam(name)
	}
	return &Bidder{
		ID:           uuid.NewString(),
		Name:         name,
		Team:         team,
		Intelligence: intelligence,
		Hand:         []Card{},
	}
}

// TakeDeal adds dealt cards to the bidder's hand.
func (b *Bidder) TakeDeal(cards []Card) {
	b.Hand = append(b.Hand, cards...)
}

// SortHand re-sorts the hand descending by natural card order.
func (b *Bidder) SortHand() {
	slices.SortFunc(b.Hand, func(x, y Card) int { return -x.Compare(y) })
}

// ClearHand empties and returns the hand.
func (b *Bidder) ClearHand() []Card {
	cards := b.Hand
	b.Hand = []Card{}
	return cards
}

// Play removes the given card from the hand and returns it.
func (b *Bidder) Play(card Card) (Card, error) {
	for i, c := range b.Hand {
		if c.Compare(card) == 0 {
			b.Hand = append(b.Hand[:i], b.Hand[i+1:]...)
			return c, nil
		}
	}
	return Card{}, ErrCardNotFound
}

// Holds reports whether the bidder's hand contains the card.
func (b *Bidder) Holds(card Card) bool {
	return slices.ContainsFunc(b.Hand, func(c Card) bool {
		return c.Compare(card) == 0
	})
}

// HasSuit reports whether the bidder holds at least one card of the suit.
func (b *Bidder) HasSuit(suit Suit) bool {
	return slices.ContainsFunc(b.Hand, func(c Card) bool {
		return c.Suit == suit
	})
}

// Equal reports whether both handles refer to the same bidder.
func (b *Bidder) Equal(other *Bidder) bool {
	return other != nil && b.ID == other.ID
}
