package pitch

import (
	"testing"

	"pitch-game/internal/shared"
)

func autoState(t *testing.T, bidderCount int) *State {
	t.Helper()
	opts := DefaultOptions()
	if err := opts.SetBidderCount(bidderCount); err != nil {
		t.Fatalf("SetBidderCount(%d): %v", bidderCount, err)
	}
	var configs []BidderConfig
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		configs = append(configs, BidderConfig{Name: name, Intelligence: shared.Artificial})
	}
	table := shared.NewTable(NewBidders(configs, nil, opts), opts.Deal)
	return NewState(table, opts)
}

func TestWorthBySuit(t *testing.T) {
	cases := []struct {
		name string
		hand []string
		suit shared.Suit
		want int
	}{
		{"long run of top honors", []string{"Ah", "Kh", "Qh", "Th", "9h", "8h"}, shared.Hearts, 5},
		{"jack with an honor and length", []string{"Jh", "Kh", "2h", "3h"}, shared.Hearts, 4},
		{"honor with the jack", []string{"Ah", "Jh", "2h"}, shared.Hearts, 3},
		{"honor with plain length", []string{"Qh", "2h", "3h", "4h"}, shared.Hearts, 3},
		{"two to an ace", []string{"Ah", "2h"}, shared.Hearts, 2},
		{"three to a queen", []string{"Qh", "2h", "3h"}, shared.Hearts, 2},
		{"short queen", []string{"Qh", "2h"}, shared.Hearts, 1},
		{"no honors", []string{"2h", "3h", "4h", "5h"}, shared.Hearts, 1},
	}
	var ai babyAI
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			worths := ai.worthBySuit(cards(t, c.hand...))
			for _, w := range worths {
				if w.suit == c.suit {
					if w.worth != c.want {
						t.Errorf("worth = %d, want %d", w.worth, c.want)
					}
					return
				}
			}
			t.Fatalf("no worth computed for %v", c.suit)
		})
	}
}

func TestWorthBySuitSkipsEmptySuits(t *testing.T) {
	var ai babyAI
	worths := ai.worthBySuit(cards(t, "Ah", "2c"))
	if len(worths) != 2 {
		t.Fatalf("got %d suit worths, want 2", len(worths))
	}
}

func TestDecideBid(t *testing.T) {
	var ai babyAI

	t.Run("outbids with a strong suit", func(t *testing.T) {
		state := autoState(t, 2)
		state.nextRound()
		leader := state.Table.Leader()
		leader.TakeDeal(cards(t, "Ah", "Kh", "2h", "9c", "8s", "7d"))

		bid := ai.DecideBid(leader, state)
		if bid.Skip || bid.Value != 2 {
			t.Errorf("bid = %+v, want a bid of 2", bid)
		}
	})

	t.Run("raises over the running bid", func(t *testing.T) {
		state := autoState(t, 2)
		round := state.nextRound()
		leader := state.Table.Leader()
		round.Bid = &Bid{Bidder: state.Table.Dealer(), Value: 2}
		leader.TakeDeal(cards(t, "Ah", "Kh", "Jh", "9h", "8s", "7d"))

		bid := ai.DecideBid(leader, state)
		if bid.Skip || bid.Value != 3 {
			t.Errorf("bid = %+v, want a raise to 3", bid)
		}
	})

	t.Run("never bids past the ceiling", func(t *testing.T) {
		state := autoState(t, 2)
		round := state.nextRound()
		leader := state.Table.Leader()
		round.Bid = &Bid{Bidder: state.Table.Dealer(), Value: 4}
		leader.TakeDeal(cards(t, "Ah", "Kh", "Qh", "Th", "9h", "8h"))

		if bid := ai.DecideBid(leader, state); !bid.Skip {
			t.Errorf("bid = %+v, want a skip at the ceiling", bid)
		}
	})

	t.Run("weak hands skip", func(t *testing.T) {
		state := autoState(t, 2)
		state.nextRound()
		leader := state.Table.Leader()
		leader.TakeDeal(cards(t, "2h", "3c", "4s", "5d", "6h", "7c"))

		if bid := ai.DecideBid(leader, state); !bid.Skip {
			t.Errorf("bid = %+v, want a skip", bid)
		}
	})

	t.Run("last bidder is forced to two", func(t *testing.T) {
		state := autoState(t, 2)
		state.nextRound()
		last := state.Table.Last()
		last.TakeDeal(cards(t, "2h", "3c", "4s", "5d", "6h", "7c"))

		bid := ai.DecideBid(last, state)
		if bid.Skip || bid.Value != 2 {
			t.Errorf("bid = %+v, want the forced bid of 2", bid)
		}
	})

	t.Run("last bidder may skip when bid none is on", func(t *testing.T) {
		state := autoState(t, 2)
		state.Options.IsBidNoneEnabled = true
		state.nextRound()
		last := state.Table.Last()
		last.TakeDeal(cards(t, "2h", "3c", "4s", "5d", "6h", "7c"))

		if bid := ai.DecideBid(last, state); !bid.Skip {
			t.Errorf("bid = %+v, want a skip", bid)
		}
	})
}

func TestDecidePlay(t *testing.T) {
	var ai babyAI

	t.Run("follows the lead suit", func(t *testing.T) {
		state := autoState(t, 2)
		round := state.nextRound()
		round.Trump = shared.Hearts
		leader, dealer := state.Table.Leader(), state.Table.Dealer()
		trick := round.NextTrick(leader)
		trick.AddPlay(leader, cards(t, "5c")[0])
		dealer.TakeDeal(cards(t, "2c", "Ah"))

		if got := ai.DecidePlay(dealer, state); got != cards(t, "2c")[0] {
			t.Errorf("play = %v, want 2c to follow the lead", got)
		}
	})

	t.Run("prefers trump when allowed over the lead", func(t *testing.T) {
		state := autoState(t, 2)
		state.Options.IsAllowTrumpWhenCanFollowSuitEnabled = true
		round := state.nextRound()
		round.Trump = shared.Hearts
		leader, dealer := state.Table.Leader(), state.Table.Dealer()
		trick := round.NextTrick(leader)
		trick.AddPlay(leader, cards(t, "5c")[0])
		dealer.TakeDeal(cards(t, "2c", "Ah"))

		if got := ai.DecidePlay(dealer, state); got != cards(t, "Ah")[0] {
			t.Errorf("play = %v, want the trump Ah", got)
		}
	})

	t.Run("leads its best suit to establish trump", func(t *testing.T) {
		state := autoState(t, 2)
		round := state.nextRound()
		leader := state.Table.Leader()
		round.NextTrick(leader)
		leader.TakeDeal(cards(t, "Ah", "Kh", "2c"))

		if got := ai.DecidePlay(leader, state); got != cards(t, "Ah")[0] {
			t.Errorf("play = %v, want Ah from the strongest suit", got)
		}
	})
}
