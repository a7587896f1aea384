package shared

import (
	"slices"
	"testing"
)

func seatBidders(names ...string) []*Bidder {
	bidders := make([]*Bidder, len(names))
	for i, name := range names {
		bidders[i] = NewBidder(name, nil, Artificial)
	}
	return bidders
}

func TestTableRoles(t *testing.T) {
	bidders := seatBidders("a", "b", "c", "d")
	table := NewTable(bidders, DealOptions{CardCount: 3})

	if got := table.Dealer(); !got.Equal(bidders[0]) {
		t.Errorf("Dealer = %s, want a", got.Name)
	}
	if got := table.Leader(); !got.Equal(bidders[1]) {
		t.Errorf("Leader = %s, want b", got.Name)
	}
	if got := table.Last(); !got.Equal(bidders[0]) {
		t.Errorf("Last = %s, want a", got.Name)
	}
	if got := table.PeekNextDealer(); !got.Equal(bidders[1]) {
		t.Errorf("PeekNextDealer = %s, want b", got.Name)
	}
	if got := table.PeekNextLeader(); !got.Equal(bidders[2]) {
		t.Errorf("PeekNextLeader = %s, want c", got.Name)
	}
}

func TestTableDealerFirst(t *testing.T) {
	bidders := seatBidders("a", "b", "c")
	table := NewTable(bidders, DealOptions{CardCount: 3, IsDealerFirst: true})

	if got := table.Leader(); !got.Equal(bidders[0]) {
		t.Errorf("Leader = %s, want the dealer", got.Name)
	}
	if got := table.Last(); !got.Equal(bidders[2]) {
		t.Errorf("Last = %s, want c", got.Name)
	}
}

func TestTableSetNext(t *testing.T) {
	bidders := seatBidders("a", "b", "c")
	table := NewTable(bidders, DealOptions{CardCount: 3})

	leader := table.SetNext()
	if !leader.Equal(bidders[2]) {
		t.Errorf("SetNext leader = %s, want c", leader.Name)
	}
	if got := table.Dealer(); !got.Equal(bidders[1]) {
		t.Errorf("Dealer after SetNext = %s, want b", got.Name)
	}
}

func TestTableSetNextLeader(t *testing.T) {
	bidders := seatBidders("a", "b", "c", "d")
	table := NewTable(bidders, DealOptions{CardCount: 3})

	if err := table.SetNextLeader(bidders[3]); err != nil {
		t.Fatalf("SetNextLeader: %v", err)
	}
	if got := table.Leader(); !got.Equal(bidders[3]) {
		t.Errorf("Leader = %s, want d", got.Name)
	}
	if got := table.Dealer(); !got.Equal(bidders[2]) {
		t.Errorf("Dealer = %s, want c", got.Name)
	}

	stranger := NewBidder("x", nil, Human)
	if err := table.SetNextLeader(stranger); err != ErrBidderNotSeated {
		t.Errorf("SetNextLeader(stranger) error = %v, want %v", err, ErrBidderNotSeated)
	}
	if err := table.SetNextDealer(stranger); err != ErrBidderNotSeated {
		t.Errorf("SetNextDealer(stranger) error = %v, want %v", err, ErrBidderNotSeated)
	}
}

func TestTableTurnOrder(t *testing.T) {
	bidders := seatBidders("a", "b", "c", "d")
	table := NewTable(bidders, DealOptions{CardCount: 3})

	var order []string
	for bidder := range table.TurnOrder() {
		order = append(order, bidder.Name)
	}
	want := []string{"b", "c", "d", "a"}
	if !slices.Equal(order, want) {
		t.Errorf("TurnOrder = %v, want %v", order, want)
	}
}

func TestTableTeams(t *testing.T) {
	us, them := NewTeam("us"), NewTeam("them")
	bidders := []*Bidder{
		NewBidder("a", us, Artificial),
		NewBidder("b", them, Artificial),
		NewBidder("c", us, Artificial),
		NewBidder("d", them, Artificial),
	}
	table := NewTable(bidders, DealOptions{CardCount: 3})

	teams := table.Teams()
	if len(teams) != 2 {
		t.Fatalf("Teams returned %d teams, want 2", len(teams))
	}
	// Leader-first pass starts at seat b.
	if !teams[0].Equal(them) || !teams[1].Equal(us) {
		t.Errorf("Teams = [%s %s], want [them us]", teams[0].Name, teams[1].Name)
	}
}

func TestTableMaxHandLength(t *testing.T) {
	bidders := seatBidders("a", "b")
	table := NewTable(bidders, DealOptions{CardCount: 3})
	if got := table.MaxHandLength(); got != 0 {
		t.Errorf("MaxHandLength = %d, want 0", got)
	}
	bidders[1].TakeDeal([]Card{{Rank: Ace, Suit: Spades}, {Rank: Two, Suit: Clubs}})
	if got := table.MaxHandLength(); got != 2 {
		t.Errorf("MaxHandLength = %d, want 2", got)
	}
}
