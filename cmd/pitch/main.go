package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"pitch-game/internal/console"
	"pitch-game/internal/database"
	"pitch-game/internal/pitch"
	"pitch-game/internal/shared"
)

var defaultSeats = []pitch.BidderConfig{
	{Name: "I-Robot", Intelligence: shared.Artificial},
	{Name: "Myself", Intelligence: shared.Human},
	{Name: "R2-D2", Intelligence: shared.Artificial},
	{Name: "WALL-E", Intelligence: shared.Artificial},
	{Name: "Terminator", Intelligence: shared.Artificial},
	{Name: "Marvin", Intelligence: shared.Artificial},
	{Name: "HAL", Intelligence: shared.Artificial},
	{Name: "Bender", Intelligence: shared.Artificial},
}

var defaultTeamNames = []string{"Robots", "Humans", "Lobsters", "Whistlers"}

func main() {
	bidders := flag.Int("bidders", 2, "number of seated bidders (2-8)")
	teams := flag.Int("teams", 0, "number of shared teams (0 for none)")
	score := flag.Int("score", 11, "winning score (11 or 21)")
	auto := flag.Bool("auto", false, "play every seat with the artificial player")
	flag.Parse()

	opts := pitch.DefaultOptions()
	if err := opts.SetWinningScore(*score); err != nil {
		log.Fatalf("Bad -score %d: %v", *score, err)
	}
	if err := opts.SetBidderCount(*bidders); err != nil {
		log.Fatalf("Bad -bidders %d: %v", *bidders, err)
	}
	if err := opts.SetTeamCount(*teams); err != nil {
		log.Fatalf("Bad -teams %d: %v", *teams, err)
	}

	seats := make([]pitch.BidderConfig, len(defaultSeats))
	copy(seats, defaultSeats)
	if *auto {
		for i := range seats {
			seats[i].Intelligence = shared.Artificial
		}
	}

	table := shared.NewTable(pitch.NewBidders(seats, defaultTeamNames, opts), opts.Deal)
	state := pitch.NewState(table, opts)

	db, err := database.New()
	if err != nil {
		log.Printf("Results store unavailable: %v", err)
		db = nil
	} else {
		defer db.Close()
	}

	log.Println("Starting a game of pitch...")
	if err := pitch.NewDealer().PlayPitch(context.Background(), state, console.New(os.Stdin, os.Stdout)); err != nil {
		log.Fatalf("Game aborted: %v", err)
	}

	winner, ok := state.Scoreboard.Winner(opts)
	if !ok || db == nil {
		return
	}
	if err := db.Insert(gameResult(state, winner)); err != nil {
		log.Printf("Could not record game result: %v", err)
	}
}

func gameResult(state *pitch.State, winner *shared.Team) database.GameResult {
	var players []string
	for bidder := range state.Table.TurnOrder() {
		players = append(players, bidder.Name)
	}
	var totals []string
	for _, team := range state.Table.Teams() {
		totals = append(totals, fmt.Sprintf("%s=%d", team.Name, state.Scoreboard.ScoreTotal(team)))
	}
	return database.GameResult{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		WinningTeam:  winner.Name,
		RoundsPlayed: len(state.Rounds),
		Players:      strings.Join(players, ","),
		Totals:       strings.Join(totals, ","),
	}
}
