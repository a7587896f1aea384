package shared

import (
	"fmt"
	"strings"
)

// Suit represents the suit of a card. The zero value NoSuit stands for
// "no suit yet" (no lead, no trump).
type Suit int

const (
	NoSuit   Suit = 0
	Clubs    Suit = 1
	Diamonds Suit = 2
	Spades   Suit = 3
	Hearts   Suit = 4
)

// Suits lists the four suits in deck order.
var Suits = []Suit{Clubs, Diamonds, Spades, Hearts}

// Color is the face color of a suit.
type Color int

const (
	NoColor Color = iota
	Black
	Red
)

// Color returns the face color derived from the suit.
func (s Suit) Color() Color {
	switch s {
	case Clubs, Spades:
		return Black
	case Diamonds, Hearts:
		return Red
	default:
		return NoColor
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	case Hearts:
		return "h"
	default:
		return "?"
	}
}

// Compare orders suits by their deck value.
func (s Suit) Compare(other Suit) int {
	return int(s) - int(other)
}

// CompareWeight compares two suits relative to a lead suit and an optional
// trump suit (NoSuit for none). Equal suits weigh the same, trump outweighs
// everything else, lead outweighs anything that is neither trump nor lead,
// and two off suits are incomparable.
func (s Suit) CompareWeight(other, lead, trump Suit) int {
	switch {
	case s.Compare(other) == 0:
		return 0
	case trump != NoSuit && s.Compare(trump) == 0:
		return 1
	case trump != NoSuit && other.Compare(trump) == 0:
		return -1
	case s.Compare(lead) == 0:
		return 1
	case other.Compare(lead) == 0:
		return -1
	default:
		return 0
	}
}

// Rank represents the rank of a card, ordered by its numeric value
// (Two=2 .. Ace=14).
type Rank int

const (
	NoRank Rank = 0
	Two    Rank = 2
	Three  Rank = 3
	Four   Rank = 4
	Five   Rank = 5
	Six    Rank = 6
	Seven  Rank = 7
	Eight  Rank = 8
	Nine   Rank = 9
	Ten    Rank = 10
	Jack   Rank = 11
	Queen  Rank = 12
	King   Rank = 13
	Ace    Rank = 14
)

// Ranks lists the thirteen ranks in deck order.
var Ranks = []Rank{
	Two, Three, Four, Five, Six, Seven, Eight,
	Nine, Ten, Jack, Queen, King, Ace,
}

// Game returns the game-point weight of the rank for round scoring.
func (r Rank) Game() int {
	switch r {
	case Ace:
		return 4
	case King:
		return 3
	case Queen:
		return 2
	case Jack:
		return 1
	case Ten:
		return 10
	default:
		return 0
	}
}

func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Compare orders ranks by value.
func (r Rank) Compare(other Rank) int {
	return int(r) - int(other)
}

// Card represents a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Compare is the natural card order: suit first, then rank.
func (c Card) Compare(other Card) int {
	if s := c.Suit.Compare(other.Suit); s != 0 {
		return s
	}
	return c.Rank.Compare(other.Rank)
}

// CompareWeight orders cards by suit weight against a lead and optional trump
// suit, breaking suit-weight ties by rank.
func (c Card) CompareWeight(other Card, lead, trump Suit) int {
	if w := c.Suit.CompareWeight(other.Suit, lead, trump); w != 0 {
		return w
	}
	return c.Rank.Compare(other.Rank)
}

// ParseCard parses a short card literal such as "Ah", "Tc" or "10c".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("can't parse card %q", s)
	}
	var suit Suit
	switch strings.ToLower(s[len(s)-1:]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "s":
		suit = Spades
	case "h":
		suit = Hearts
	default:
		return Card{}, fmt.Errorf("no such suit %q", s[len(s)-1:])
	}
	var rank Rank
	switch strings.ToUpper(s[:len(s)-1]) {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		rank = Rank(s[0] - '0')
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("no such rank %q", s[:len(s)-1])
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// FullDeck returns all 52 cards in suit-then-rank deck order.
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}
