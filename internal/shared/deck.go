package shared

import (
	"math/rand/v2"
)

// CutOptions parameterizes a deck cut.
type CutOptions struct {
	CutMinimum int
}

// ShuffleOptions parameterizes a riffle shuffle.
type ShuffleOptions struct {
	ShuffleCount int
}

// DealOptions parameterizes dealing and seat rotation.
type DealOptions struct {
	CardCount     int
	IsDealerFirst bool
}

// Deck is a mutable stack of cards. The top of the deck is the end of the
// stack, so Pop removes the most recently pushed card.
type Deck struct {
	stack []Card
}

// NewDeck creates a full 52-card deck in factory order.
func NewDeck() *Deck {
	d := &Deck{}
	d.Init()
	return d
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.stack)
}

// Pop removes and returns the top card, reporting false on an empty deck.
func (d *Deck) Pop() (Card, bool) {
	if len(d.stack) == 0 {
		return Card{}, false
	}
	card := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return card, true
}

// PopN removes up to n cards from the top and returns them in stack order.
func (d *Deck) PopN(n int) []Card {
	if n < 1 {
		n = 1
	}
	if n > len(d.stack) {
		n = len(d.stack)
	}
	at := len(d.stack) - n
	cards := make([]Card, n)
	copy(cards, d.stack[at:])
	d.stack = d.stack[:at]
	return cards
}

// Push appends cards to the top of the deck.
func (d *Deck) Push(cards ...Card) {
	d.stack = append(d.stack, cards...)
}

// Cut moves a slice of topLength cards to the other end of the stack.
// A topLength below 1 picks a uniformly random length within
// [cutMinimum, length-cutMinimum].
func (d *Deck) Cut(topLength int, opts CutOptions) error {
	if opts.CutMinimum > len(d.stack) {
		return ErrCutBounds
	}
	if topLength < 1 {
		lo := min(opts.CutMinimum, len(d.stack)-opts.CutMinimum)
		hi := max(opts.CutMinimum, len(d.stack)-opts.CutMinimum)
		if hi > lo {
			topLength = lo + rand.IntN(hi-lo)
		} else {
			topLength = lo
		}
	}
	if topLength < opts.CutMinimum || topLength > len(d.stack)-opts.CutMinimum {
		return ErrCutBounds
	}
	cut := make([]Card, 0, len(d.stack))
	cut = append(cut, d.stack[topLength:]...)
	cut = append(cut, d.stack[:topLength]...)
	d.stack = cut
	return nil
}

// Shuffle folds any already-dealt cards back into the stack, then riffles the
// combined pile ShuffleCount times: split in half and rebuild by popping from
// the tail of a randomly chosen half until both halves run out. This is a
// riffle-like randomized interleave, not a uniform permutation.
func (d *Deck) Shuffle(dealt []Card, opts ShuffleOptions) {
	all := append(d.stack, dealt...)
	for iteration := 0; iteration < opts.ShuffleCount; iteration++ {
		left := append([]Card(nil), all[:len(all)/2]...)
		right := append([]Card(nil), all[len(all)/2:]...)
		all = all[:0]
		for len(left) > 0 || len(right) > 0 {
			if len(left) > 0 && (len(right) == 0 || rand.Float64() < 0.5) {
				all = append(all, left[len(left)-1])
				left = left[:len(left)-1]
			} else if len(right) > 0 {
				all = append(all, right[len(right)-1])
				right = right[:len(right)-1]
			}
		}
	}
	d.stack = all
}

// Init rebuilds a complete fresh deck, discarding whatever is in the stack.
// Used between rounds to guard against missing-card bugs.
func (d *Deck) Init() {
	d.stack = FullDeck()
}
