package pitch

import (
	"context"
	"log"

	"pitch-game/internal/shared"
)

// BidValidation is the outcome of validating a bid.
type BidValidation int

const (
	BidValid BidValidation = iota
	BidLessThan2
	BidNotExceedBid
	BidExceed4
	BidExceed5
	BidNoBid
)

func (v BidValidation) String() string {
	switch v {
	case BidValid:
		return "valid"
	case BidLessThan2:
		return "bid is less than two"
	case BidNotExceedBid:
		return "bid does not exceed the current bid"
	case BidExceed4:
		return "bid exceeds four"
	case BidExceed5:
		return "bid exceeds five"
	case BidNoBid:
		return "the last bidder must bid"
	default:
		return "unknown"
	}
}

// PlayValidation is the outcome of validating a card play.
type PlayValidation int

const (
	PlayValid PlayValidation = iota
	PlayNotFollowingSuit
	PlayNotInHand
)

func (v PlayValidation) String() string {
	switch v {
	case PlayValid:
		return "valid"
	case PlayNotFollowingSuit:
		return "card does not follow the lead suit"
	case PlayNotInHand:
		return "card is not in hand"
	default:
		return "unknown"
	}
}

// Collaborator is the external actor the dealer calls into: a terminal for a
// human seat, the heuristic for an artificial one, or a test double. Each
// call is a suspension point; calls are made one at a time in strict seat
// order, and an error from any of them aborts the game.
type Collaborator interface {
	// ShowCards reports whether the bidder's hand should be revealed this turn.
	ShowCards(ctx context.Context, state *State, bidder *shared.Bidder) (bool, error)
	// CollectBid obtains a bid. A non-valid reason carries the failure of the
	// previous attempt back to the actor.
	CollectBid(ctx context.Context, state *State, bidder *shared.Bidder, reason BidValidation) (Bid, error)
	// CollectPlay obtains a card to play, with the same retry contract.
	CollectPlay(ctx context.Context, state *State, bidder *shared.Bidder, reason PlayValidation) (shared.Card, error)
	// OnTrickResolved is notified with the winning play of a finished trick.
	OnTrickResolved(ctx context.Context, state *State, winning shared.Play) error
	// OnRoundScored is notified with a finished round's award sheet.
	OnRoundScored(ctx context.Context, state *State, calc *RoundCalculation) error
	// OnGameWon is notified once with the winning team.
	OnGameWon(ctx context.Context, state *State, winner *shared.Team) error
	// Refresh fires after every state mutation for progressive display.
	Refresh(ctx context.Context, state *State, message string) error
}

// maxAttempts bounds the bid/play retry loops.
const maxAttempts = 10

// dealPasses is how many times each bidder receives Deal.CardCount cards.
const dealPasses = 2

// Dealer drives the full game loop: deal, bids, tricks, scoring, rotation,
// until a team reaches the winning score.
type Dealer struct{}

// NewDealer creates a dealer.
func NewDealer() *Dealer {
	return &Dealer{}
}

// PlayPitch runs games' rounds until a winner is found, then notifies the
// collaborator and returns. Structural failures and collaborator errors
// abort the game.
func (d *Dealer) PlayPitch(ctx context.Context, state *State, collab Collaborator) error {
	d.clearState(state)

	var winner *shared.Team
	for winner == nil {
		round := state.nextRound()

		if err := d.DealHands(ctx, state, collab); err != nil {
			return err
		}

		nextDealer := state.Table.PeekNextDealer()

		if err := d.TakeBids(ctx, state, collab); err != nil {
			return err
		}

		// All bidders skipped: the same dealer deals again.
		if round.Bid == nil {
			continue
		}

		for state.Table.MaxHandLength() > 0 {
			round.NextTrick(state.Table.Leader())
			if err := d.TakePlays(ctx, state, collab); err != nil {
				return err
			}
		}

		if err := d.PushScores(ctx, state, collab); err != nil {
			return err
		}

		if err := state.Table.SetNextDealer(nextDealer); err != nil {
			return err
		}

		if team, ok := state.Scoreboard.Winner(state.Options); ok {
			winner = team
		}
	}

	log.Printf("Game won by team %s.", winner.Name)
	return collab.OnGameWon(ctx, state, winner)
}

// DealHands returns stray cards to a rebuilt deck, shuffles and cuts, and
// deals two passes of Deal.CardCount cards to each bidder in leader-first
// order, re-sorting each hand after every pass.
func (d *Dealer) DealHands(ctx context.Context, state *State, collab Collaborator) error {
	d.clearCards(state)
	state.Deck.Shuffle(nil, state.Options.Shuffle)
	if err := state.Deck.Cut(0, state.Options.Cut); err != nil {
		return err
	}

	for pass := 0; pass < dealPasses; pass++ {
		for bidder := range state.Table.TurnOrder() {
			cards := state.Deck.PopN(state.Options.Deal.CardCount)
			if len(cards) < state.Options.Deal.CardCount {
				return shared.ErrDeckEmpty
			}
			bidder.TakeDeal(cards)
			bidder.SortHand()
			if err := collab.Refresh(ctx, state, ""); err != nil {
				return err
			}
		}
	}
	return nil
}

// TakeBids collects a bid from every seat in leader-first order, re-asking on
// invalid bids up to the attempt cap. A valid non-skip bid becomes the
// round's running bid; once all seats have acted, the winning bidder leads.
func (d *Dealer) TakeBids(ctx context.Context, state *State, collab Collaborator) error {
	round := state.CurrentRound()

	for bidder := range state.Table.TurnOrder() {
		show, err := collab.ShowCards(ctx, state, bidder)
		if err != nil {
			return err
		}
		state.ShowCards = show
		if err := collab.Refresh(ctx, state, ""); err != nil {
			return err
		}

		bid, err := collab.CollectBid(ctx, state, bidder, BidValid)
		if err != nil {
			return err
		}
		for attempt := 0; ; attempt++ {
			reason := d.validateBid(state, bid)
			if reason == BidValid {
				break
			}
			if attempt >= maxAttempts {
				return ErrTooManyAttempts
			}
			if err := collab.Refresh(ctx, state, reason.String()); err != nil {
				return err
			}
			if bid, err = collab.CollectBid(ctx, state, bidder, reason); err != nil {
				return err
			}
		}

		if !bid.Skip {
			b := bid
			round.Bid = &b
			log.Printf("%s bids %d.", bidder.Name, bid.Value)
		}

		state.ShowCards = false
		if err := collab.Refresh(ctx, state, ""); err != nil {
			return err
		}
	}

	if round.Bid != nil {
		return state.Table.SetNextLeader(round.Bid.Bidder)
	}
	return nil
}

// TakePlays runs one trick: every seat plays a validated card in leader-first
// order, the first card of the round fixes trump, and the trick resolves to a
// winner whose team collects the waste and who leads the next trick.
func (d *Dealer) TakePlays(ctx context.Context, state *State, collab Collaborator) error {
	round := state.CurrentRound()
	trick := round.CurrentTrick()

	for bidder := range state.Table.TurnOrder() {
		show, err := collab.ShowCards(ctx, state, bidder)
		if err != nil {
			return err
		}
		state.ShowCards = show
		if err := collab.Refresh(ctx, state, "showing cards to bidder"); err != nil {
			return err
		}

		selected, err := collab.CollectPlay(ctx, state, bidder, PlayValid)
		if err != nil {
			return err
		}
		for attempt := 0; ; attempt++ {
			reason := d.validatePlay(state, shared.Play{Bidder: bidder, Card: selected})
			if reason == PlayValid {
				break
			}
			if attempt >= maxAttempts {
				return ErrTooManyAttempts
			}
			if err := collab.Refresh(ctx, state, reason.String()); err != nil {
				return err
			}
			if selected, err = collab.CollectPlay(ctx, state, bidder, reason); err != nil {
				return err
			}
		}

		played, err := bidder.Play(selected)
		if err != nil {
			return err
		}
		if round.Trump == shared.NoSuit {
			round.Trump = played.Suit
			log.Printf("%s established trump: %s.", bidder.Name, round.Trump)
		}
		trick.AddPlay(bidder, played)

		state.ShowCards = false
		if err := collab.Refresh(ctx, state, "card placed in waste"); err != nil {
			return err
		}
	}

	if round.Trump == shared.NoSuit {
		return ErrNoTrump
	}
	winning, ok := trick.WinningPlay(round.Trump)
	if !ok {
		return ErrNoTrickWinner
	}
	if err := collab.OnTrickResolved(ctx, state, winning); err != nil {
		return err
	}
	winning.Bidder.Team.TakeTrick(trick.Cards())
	if err := state.Table.SetNextLeader(winning.Bidder); err != nil {
		return err
	}
	return collab.Refresh(ctx, state, "trick completed with winner as next leader")
}

// PushScores computes the round's award sheet and, when the round is
// complete, appends a score row for every team and notifies the collaborator.
func (d *Dealer) PushScores(ctx context.Context, state *State, collab Collaborator) error {
	round := state.CurrentRound()
	calc, err := CalculateRound(round, state.Table)
	if err != nil {
		return err
	}
	if calc != nil {
		state.Scoreboard.PushScores(calc, state.Options)
		if err := collab.Refresh(ctx, state, ""); err != nil {
			return err
		}
		if err := collab.OnRoundScored(ctx, state, calc); err != nil {
			return err
		}
	}
	return collab.Refresh(ctx, state, "")
}

// validateBid checks a bid in priority order: skip rules first, then the
// bid-five / bid-four ceilings, the floor of two, and finally the
// must-exceed-running-bid rule.
func (d *Dealer) validateBid(state *State, bid Bid) BidValidation {
	round := state.CurrentRound()
	opts := state.Options
	if bid.Skip {
		if opts.IsBidNoneEnabled {
			return BidValid
		}
		if state.Table.Last().Equal(bid.Bidder) && round.Bid == nil {
			return BidNoBid
		}
		return BidValid
	}
	if opts.IsBidFiveEnabled {
		if bid.Value > 5 {
			return BidExceed5
		}
	} else if bid.Value > 4 {
		return BidExceed4
	}
	if bid.Value < 2 {
		return BidLessThan2
	}
	if round.Bid != nil && bid.Value <= round.Bid.Value {
		return BidNotExceedBid
	}
	return BidValid
}

// validatePlay checks a play: the card must be held, trump may bypass the
// follow-suit rule when the option allows it, and otherwise the lead suit
// must be followed when the hand can.
func (d *Dealer) validatePlay(state *State, play shared.Play) PlayValidation {
	round := state.CurrentRound()
	trick := round.CurrentTrick()
	if !play.Bidder.Holds(play.Card) {
		return PlayNotInHand
	}
	if state.Options.IsAllowTrumpWhenCanFollowSuitEnabled &&
		round.Trump != shared.NoSuit && play.Card.Suit.Compare(round.Trump) == 0 {
		return PlayValid
	}
	if lead, ok := trick.LeadSuit(); ok &&
		play.Card.Suit.Compare(lead) != 0 && play.Bidder.HasSuit(lead) {
		return PlayNotFollowingSuit
	}
	return PlayValid
}

// clearCards returns every card from hands and team piles to a rebuilt deck,
// logging a warning when the cards in circulation don't reconcile to 52.
func (d *Dealer) clearCards(state *State) {
	var cards []shared.Card
	for bidder := range state.Table.TurnOrder() {
		cards = append(cards, bidder.ClearHand()...)
		if len(bidder.Team.Cards) > 0 {
			cards = append(cards, bidder.Team.ClearCards()...)
		}
	}
	if len(cards)+state.Deck.Len() != 52 {
		log.Printf("Warning: %d cards in deck and %d in circulation do not make 52.",
			state.Deck.Len(), len(cards))
	}
	state.Deck.Init()
}

// clearState resets everything for a brand-new game.
func (d *Dealer) clearState(state *State) {
	d.clearCards(state)
	state.Scoreboard.Clear()
	state.Rounds = nil
	state.ShowCards = false
}
