package shared

import (
	"iter"
	"slices"
)

// Table is a fixed circular seating of bidders. Seat order never changes
// after construction; only the dealer index rotates. The leader is derived
// from the dealer according to the IsDealerFirst option.
type Table struct {
	seats         []*Bidder
	currentDealer int
	isDealerFirst bool
}

// NewTable seats the bidders in the given order, dealer at seat zero.
func NewTable(bidders []*Bidder, opts DealOptions) *Table {
	return &Table{
		seats:         slices.Clone(bidders),
		currentDealer: 0,
		isDealerFirst: opts.IsDealerFirst,
	}
}

// Len returns the number of seats.
func (t *Table) Len() int {
	return len(t.seats)
}

// Dealer returns the bidder currently dealing.
func (t *Table) Dealer() *Bidder {
	return t.seats[t.currentDealer]
}

// Leader returns the bidder who acts first this round.
func (t *Table) Leader() *Bidder {
	return t.seats[t.leaderIndex()]
}

// Last returns the bidder who acts last, the seat just before the leader.
func (t *Table) Last() *Bidder {
	return t.seats[t.fix(t.leaderIndex()-1)]
}

// PeekNextDealer returns the dealer of the next round without rotating.
func (t *Table) PeekNextDealer() *Bidder {
	return t.seats[t.fix(t.currentDealer+1)]
}

// PeekNextLeader returns the leader of the next round without rotating.
func (t *Table) PeekNextLeader() *Bidder {
	return t.seats[t.fix(t.leaderIndex()+1)]
}

// SetNext advances the dealer by one seat and returns the new leader.
func (t *Table) SetNext() *Bidder {
	leader := t.PeekNextLeader()
	t.currentDealer = t.fix(t.currentDealer + 1)
	return leader
}

// SetNextDealer makes the given bidder the dealer.
func (t *Table) SetNextDealer(bidder *Bidder) error {
	i := t.seatIndex(bidder)
	if i < 0 {
		return ErrBidderNotSeated
	}
	t.currentDealer = i
	return nil
}

// SetNextLeader makes the given bidder the leader, adjusting the dealer
// index for the IsDealerFirst offset.
func (t *Table) SetNextLeader(bidder *Bidder) error {
	i := t.seatIndex(bidder)
	if i < 0 {
		return ErrBidderNotSeated
	}
	if t.isDealerFirst {
		t.currentDealer = i
	} else {
		t.currentDealer = t.fix(i - 1)
	}
	return nil
}

// TurnOrder yields every seat exactly once, starting at the leader and
// wrapping around. This defines turn order for bidding and play.
func (t *Table) TurnOrder() iter.Seq[*Bidder] {
	return func(yield func(*Bidder) bool) {
		start := t.leaderIndex()
		for i := 0; i < len(t.seats); i++ {
			if !yield(t.seats[t.fix(start+i)]) {
				return
			}
		}
	}
}

// Teams returns the distinct teams at the table in first-seen order during
// a leader-first pass.
func (t *Table) Teams() []*Team {
	var teams []*Team
	for bidder := range t.TurnOrder() {
		if !slices.ContainsFunc(teams, bidder.Team.Equal) {
			teams = append(teams, bidder.Team)
		}
	}
	return teams
}

// MaxHandLength returns the largest hand size at the table.
func (t *Table) MaxHandLength() int {
	longest := 0
	for bidder := range t.TurnOrder() {
		longest = max(longest, len(bidder.Hand))
	}
	return longest
}

func (t *Table) leaderIndex() int {
	if t.isDealerFirst {
		return t.currentDealer
	}
	return t.fix(t.currentDealer + 1)
}

func (t *Table) seatIndex(bidder *Bidder) int {
	return slices.IndexFunc(t.seats, bidder.Equal)
}

func (t *Table) fix(index int) int {
	n := len(t.seats)
	return ((index % n) + n) % n
}
