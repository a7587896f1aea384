package pitch

import (
	"context"
	"log"

	"pitch-game/internal/shared"
)

// AutoPlayer is a Collaborator that answers every seat from its intelligence
// kind, with no human interaction. Hosts that mix human seats embed it and
// override the collecting methods for their own players.
type AutoPlayer struct{}

// ShowCards never reveals hands; nobody is watching.
func (AutoPlayer) ShowCards(ctx context.Context, state *State, bidder *shared.Bidder) (bool, error) {
	return false, ctx.Err()
}

// CollectBid asks the bidder's intelligence for a bid.
func (AutoPlayer) CollectBid(ctx context.Context, state *State, bidder *shared.Bidder, reason BidValidation) (Bid, error) {
	if err := ctx.Err(); err != nil {
		return Bid{}, err
	}
	ai := SelectIntelligence(bidder.Intelligence)
	if ai == nil {
		return Bid{}, GameError("no intelligence for bidder " + bidder.Name)
	}
	return ai.DecideBid(bidder, state), nil
}

// CollectPlay asks the bidder's intelligence for a card.
func (AutoPlayer) CollectPlay(ctx context.Context, state *State, bidder *shared.Bidder, reason PlayValidation) (shared.Card, error) {
	if err := ctx.Err(); err != nil {
		return shared.Card{}, err
	}
	ai := SelectIntelligence(bidder.Intelligence)
	if ai == nil {
		return shared.Card{}, GameError("no intelligence for bidder " + bidder.Name)
	}
	return ai.DecidePlay(bidder, state), nil
}

func (AutoPlayer) OnTrickResolved(ctx context.Context, state *State, winning shared.Play) error {
	log.Printf("Trick won by %s with %s.", winning.Bidder.Name, winning.Card)
	return ctx.Err()
}

func (AutoPlayer) OnRoundScored(ctx context.Context, state *State, calc *RoundCalculation) error {
	return ctx.Err()
}

func (AutoPlayer) OnGameWon(ctx context.Context, state *State, winner *shared.Team) error {
	return ctx.Err()
}

func (AutoPlayer) Refresh(ctx context.Context, state *State, message string) error {
	return ctx.Err()
}
