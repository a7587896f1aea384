package console

import (
	"context"
	"strings"
	"testing"

	"pitch-game/internal/pitch"
	"pitch-game/internal/shared"
)

func humanState(t *testing.T) (*pitch.State, *shared.Bidder) {
	t.Helper()
	opts := pitch.DefaultOptions()
	bidders := []*shared.Bidder{
		shared.NewBidder("player", nil, shared.Human),
		shared.NewBidder("bot", nil, shared.Artificial),
	}
	table := shared.NewTable(bidders, opts.Deal)
	state := pitch.NewState(table, opts)
	return state, bidders[0]
}

func TestShowCards(t *testing.T) {
	state, human := humanState(t)
	c := New(strings.NewReader(""), &strings.Builder{})

	show, err := c.ShowCards(context.Background(), state, human)
	if err != nil || !show {
		t.Errorf("ShowCards(human) = %v, %v, want true", show, err)
	}

	bot := shared.NewBidder("bot", nil, shared.Artificial)
	show, err = c.ShowCards(context.Background(), state, bot)
	if err != nil || show {
		t.Errorf("ShowCards(bot) = %v, %v, want false", show, err)
	}
}

func TestCollectBidFromHuman(t *testing.T) {
	t.Run("numeric bid", func(t *testing.T) {
		state, human := humanState(t)
		var out strings.Builder
		c := New(strings.NewReader("3\n"), &out)

		bid, err := c.CollectBid(context.Background(), state, human, pitch.BidValid)
		if err != nil {
			t.Fatalf("CollectBid: %v", err)
		}
		if bid.Skip || bid.Value != 3 || !bid.Bidder.Equal(human) {
			t.Errorf("bid = %+v, want 3 by the human", bid)
		}
	})

	t.Run("skip", func(t *testing.T) {
		state, human := humanState(t)
		c := New(strings.NewReader("s\n"), &strings.Builder{})

		bid, err := c.CollectBid(context.Background(), state, human, pitch.BidValid)
		if err != nil {
			t.Fatalf("CollectBid: %v", err)
		}
		if !bid.Skip {
			t.Errorf("bid = %+v, want a skip", bid)
		}
	})

	t.Run("garbage is re-prompted", func(t *testing.T) {
		state, human := humanState(t)
		var out strings.Builder
		c := New(strings.NewReader("huh\n4\n"), &out)

		bid, err := c.CollectBid(context.Background(), state, human, pitch.BidValid)
		if err != nil {
			t.Fatalf("CollectBid: %v", err)
		}
		if bid.Value != 4 {
			t.Errorf("bid = %+v, want 4", bid)
		}
		if !strings.Contains(out.String(), "Not a number") {
			t.Errorf("output %q does not mention the bad input", out.String())
		}
	})
}

func TestCollectPlayFromHuman(t *testing.T) {
	state, human := humanState(t)
	want, err := shared.ParseCard("Ah")
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	c := New(strings.NewReader("xx\nAh\n"), &out)

	card, err := c.CollectPlay(context.Background(), state, human, pitch.PlayValid)
	if err != nil {
		t.Fatalf("CollectPlay: %v", err)
	}
	if card != want {
		t.Errorf("card = %v, want Ah", card)
	}
}

func TestReadLineEOF(t *testing.T) {
	state, human := humanState(t)
	c := New(strings.NewReader(""), &strings.Builder{})

	if _, err := c.CollectBid(context.Background(), state, human, pitch.BidValid); err == nil {
		t.Error("expected an error on exhausted input")
	}
}
