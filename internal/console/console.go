// Package console is the terminal front-end for the collaborator contract.
// Human seats are prompted on standard input; artificial seats fall through
// to the embedded AutoPlayer.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pitch-game/internal/pitch"
	"pitch-game/internal/shared"
)

// Collaborator drives a mixed table of humans and bots from a terminal.
type Collaborator struct {
	pitch.AutoPlayer
	in  *bufio.Scanner
	out io.Writer
}

// New creates a terminal collaborator reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Collaborator {
	return &Collaborator{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ShowCards reveals hands to human bidders only.
func (c *Collaborator) ShowCards(ctx context.Context, state *pitch.State, bidder *shared.Bidder) (bool, error) {
	return bidder.Intelligence == shared.Human, ctx.Err()
}

// CollectBid prompts a human for a bid, or defers to the bidder's
// intelligence.
func (c *Collaborator) CollectBid(ctx context.Context, state *pitch.State, bidder *shared.Bidder, reason pitch.BidValidation) (pitch.Bid, error) {
	if bidder.Intelligence != shared.Human {
		return c.AutoPlayer.CollectBid(ctx, state, bidder, reason)
	}
	if reason != pitch.BidValid {
		fmt.Fprintf(c.out, "Invalid bid: %s. Try again.\n", reason)
	}
	c.showHand(state, bidder)
	highest := 4
	if state.Options.IsBidFiveEnabled {
		highest = 5
	}
	for {
		fmt.Fprintf(c.out, "%s, enter bid (2-%d) or s to skip: ", bidder.Name, highest)
		line, err := c.readLine(ctx)
		if err != nil {
			return pitch.Bid{}, err
		}
		if strings.EqualFold(line, "s") {
			return pitch.Bid{Bidder: bidder, Skip: true}, nil
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "Not a number: %q.\n", line)
			continue
		}
		return pitch.Bid{Bidder: bidder, Value: value}, nil
	}
}

// CollectPlay prompts a human for a card literal such as Ah or Tc, or defers
// to the bidder's intelligence.
func (c *Collaborator) CollectPlay(ctx context.Context, state *pitch.State, bidder *shared.Bidder, reason pitch.PlayValidation) (shared.Card, error) {
	if bidder.Intelligence != shared.Human {
		return c.AutoPlayer.CollectPlay(ctx, state, bidder, reason)
	}
	if reason != pitch.PlayValid {
		fmt.Fprintf(c.out, "Invalid play: %s. Try again.\n", reason)
	}
	c.showHand(state, bidder)
	if trick := state.CurrentTrick(); trick != nil && len(trick.Waste) > 0 {
		fmt.Fprintf(c.out, "Trick so far: %s\n", cardList(trick.Cards()))
	}
	if round := state.CurrentRound(); round != nil && round.Trump != shared.NoSuit {
		fmt.Fprintf(c.out, "Trump is %s.\n", round.Trump)
	}
	for {
		fmt.Fprintf(c.out, "%s, enter card to play: ", bidder.Name)
		line, err := c.readLine(ctx)
		if err != nil {
			return shared.Card{}, err
		}
		card, err := shared.ParseCard(line)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		return card, nil
	}
}

// OnTrickResolved announces the trick winner.
func (c *Collaborator) OnTrickResolved(ctx context.Context, state *pitch.State, winning shared.Play) error {
	fmt.Fprintf(c.out, "Trick won by %s with %s.\n", winning.Bidder.Name, winning.Card)
	return ctx.Err()
}

// OnRoundScored prints the round's awards and the running totals.
func (c *Collaborator) OnRoundScored(ctx context.Context, state *pitch.State, calc *pitch.RoundCalculation) error {
	fmt.Fprintf(c.out, "Round over. Bid held by %s at %d.\n", calc.GreatestBid.Team.Name, calc.GreatestBid.Value)
	if calc.HighestTrump != nil {
		fmt.Fprintf(c.out, "  High: %s (%s)\n", calc.HighestTrump.Team.Name, calc.HighestTrump.Card)
	}
	if calc.LowestTrump != nil {
		fmt.Fprintf(c.out, "  Low: %s (%s)\n", calc.LowestTrump.Team.Name, calc.LowestTrump.Card)
	}
	if calc.JackiestTrump != nil {
		fmt.Fprintf(c.out, "  Jack: %s (%s)\n", calc.JackiestTrump.Team.Name, calc.JackiestTrump.Card)
	}
	if calc.GreatestGame != nil {
		for _, team := range calc.GreatestGame.Teams {
			fmt.Fprintf(c.out, "  Game: %s (%d points)\n", team.Name, calc.GreatestGame.Value)
		}
	}
	for _, ts := range state.Scoreboard.ScoresForRound(state.Scoreboard.RoundCount() - 1) {
		fmt.Fprintf(c.out, "  %s: in %d on a bid of %d, net %+d\n",
			ts.Team.Name, ts.Score.In(), ts.Score.Bid, ts.Score.Net())
	}
	for _, team := range state.Table.Teams() {
		fmt.Fprintf(c.out, "  Total for %s: %d\n", team.Name, state.Scoreboard.ScoreTotal(team))
	}
	return ctx.Err()
}

// OnGameWon announces the winner.
func (c *Collaborator) OnGameWon(ctx context.Context, state *pitch.State, winner *shared.Team) error {
	fmt.Fprintf(c.out, "Game won by %s with %d points!\n", winner.Name, state.Scoreboard.ScoreTotal(winner))
	return ctx.Err()
}

// Refresh is a no-op; the terminal redraws on the prompts instead.
func (c *Collaborator) Refresh(ctx context.Context, state *pitch.State, message string) error {
	return ctx.Err()
}

func (c *Collaborator) showHand(state *pitch.State, bidder *shared.Bidder) {
	if !state.ShowCards {
		return
	}
	fmt.Fprintf(c.out, "Your hand: %s\n", cardList(bidder.Hand))
}

func (c *Collaborator) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func cardList(cards []shared.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
