package pitch

import (
	"slices"

	"pitch-game/internal/shared"
)

// Options holds every engine-relevant game setting. Values are validated by
// the setters before any game state changes.
type Options struct {
	// WinningScore is the cumulative net total a team needs to win (11 or 21).
	WinningScore int
	// BidderCount is the number of seated players.
	BidderCount int
	// TeamCount is the number of shared teams; 0 puts every bidder on their own.
	TeamCount int
	// IsBidFiveEnabled allows a bid of five.
	IsBidFiveEnabled bool
	// IsBidNoneEnabled lets every bidder skip, leaving the round without a bid.
	IsBidNoneEnabled bool
	// IsAllowTrumpWhenCanFollowSuitEnabled lets a bidder play trump even while
	// holding the lead suit.
	IsAllowTrumpWhenCanFollowSuitEnabled bool
	// IsScoreTiedGamePointsEnabled awards the game point to every team tied
	// for the most game points; otherwise a tie awards nobody.
	IsScoreTiedGamePointsEnabled bool

	Shuffle shared.ShuffleOptions
	Deal    shared.DealOptions
	Cut     shared.CutOptions
}

// DefaultOptions returns the standard two-handed, eleven-point configuration.
func DefaultOptions() Options {
	return Options{
		WinningScore:                 11,
		BidderCount:                  2,
		TeamCount:                    0,
		IsScoreTiedGamePointsEnabled: true,
		Shuffle:                      shared.ShuffleOptions{ShuffleCount: 5},
		Deal:                         shared.DealOptions{CardCount: 3, IsDealerFirst: false},
		Cut:                          shared.CutOptions{CutMinimum: 1},
	}
}

// ValidWinningScores lists the winning scores a game may be played to.
func ValidWinningScores() []int { return []int{11, 21} }

// ValidBidderCounts lists the supported table sizes.
func ValidBidderCounts() []int { return []int{2, 3, 4, 5, 6, 7, 8} }

// ValidShuffleCounts lists the supported riffle iteration counts.
func ValidShuffleCounts() []int { return []int{1, 2, 3, 4, 5, 6, 7, 8, 9} }

// ValidTeamCounts lists the team counts that divide a table of the given
// size evenly, plus 0 for every-bidder-for-themselves.
func ValidTeamCounts(bidderCount int) []int {
	counts := []int{0}
	if bidderCount%2 == 0 {
		counts = append(counts, 2)
	}
	if bidderCount == 3 || bidderCount == 6 {
		counts = append(counts, 3)
	}
	if bidderCount == 4 || bidderCount == 8 {
		counts = append(counts, 4)
	}
	return counts
}

// SetWinningScore validates and sets the winning score.
func (o *Options) SetWinningScore(score int) error {
	if !slices.Contains(ValidWinningScores(), score) {
		return ErrInvalidOption
	}
	o.WinningScore = score
	return nil
}

// SetBidderCount validates and sets the table size, dropping the team count
// back to 0 if it no longer fits.
func (o *Options) SetBidderCount(count int) error {
	if !slices.Contains(ValidBidderCounts(), count) {
		return ErrInvalidOption
	}
	o.BidderCount = count
	if !slices.Contains(ValidTeamCounts(count), o.TeamCount) {
		o.TeamCount = 0
	}
	return nil
}

// SetTeamCount validates and sets the number of shared teams.
func (o *Options) SetTeamCount(count int) error {
	if !slices.Contains(ValidTeamCounts(o.BidderCount), count) {
		return ErrInvalidOption
	}
	o.TeamCount = count
	return nil
}

// SetShuffleCount validates and sets the riffle iteration count.
func (o *Options) SetShuffleCount(count int) error {
	if !slices.Contains(ValidShuffleCounts(), count) {
		return ErrInvalidOption
	}
	o.Shuffle.ShuffleCount = count
	return nil
}

// SetCutMinimum validates and sets the minimum cut depth.
func (o *Options) SetCutMinimum(minimum int) error {
	if minimum < 1 || minimum > 51 {
		return ErrInvalidOption
	}
	o.Cut.CutMinimum = minimum
	return nil
}
