package pitch

import (
	"slices"
	"testing"
)

func TestValidTeamCounts(t *testing.T) {
	cases := []struct {
		bidders int
		want    []int
	}{
		{2, []int{0, 2}},
		{3, []int{0, 3}},
		{4, []int{0, 2, 4}},
		{5, []int{0}},
		{6, []int{0, 2, 3}},
		{7, []int{0}},
		{8, []int{0, 2, 4}},
	}
	for _, c := range cases {
		if got := ValidTeamCounts(c.bidders); !slices.Equal(got, c.want) {
			t.Errorf("ValidTeamCounts(%d) = %v, want %v", c.bidders, got, c.want)
		}
	}
}

func TestOptionSetters(t *testing.T) {
	opts := DefaultOptions()

	if err := opts.SetWinningScore(21); err != nil {
		t.Errorf("SetWinningScore(21): %v", err)
	}
	if err := opts.SetWinningScore(15); err != ErrInvalidOption {
		t.Errorf("SetWinningScore(15) error = %v, want %v", err, ErrInvalidOption)
	}
	if opts.WinningScore != 21 {
		t.Errorf("WinningScore = %d after rejected set, want 21", opts.WinningScore)
	}

	if err := opts.SetBidderCount(1); err != ErrInvalidOption {
		t.Errorf("SetBidderCount(1) error = %v, want %v", err, ErrInvalidOption)
	}
	if err := opts.SetBidderCount(9); err != ErrInvalidOption {
		t.Errorf("SetBidderCount(9) error = %v, want %v", err, ErrInvalidOption)
	}

	if err := opts.SetShuffleCount(0); err != ErrInvalidOption {
		t.Errorf("SetShuffleCount(0) error = %v, want %v", err, ErrInvalidOption)
	}
	if err := opts.SetShuffleCount(9); err != nil {
		t.Errorf("SetShuffleCount(9): %v", err)
	}

	if err := opts.SetCutMinimum(0); err != ErrInvalidOption {
		t.Errorf("SetCutMinimum(0) error = %v, want %v", err, ErrInvalidOption)
	}
	if err := opts.SetCutMinimum(52); err != ErrInvalidOption {
		t.Errorf("SetCutMinimum(52) error = %v, want %v", err, ErrInvalidOption)
	}
	if err := opts.SetCutMinimum(26); err != nil {
		t.Errorf("SetCutMinimum(26): %v", err)
	}
}

func TestSetBidderCountResetsTeamCount(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.SetBidderCount(8); err != nil {
		t.Fatalf("SetBidderCount(8): %v", err)
	}
	if err := opts.SetTeamCount(4); err != nil {
		t.Fatalf("SetTeamCount(4): %v", err)
	}
	if err := opts.SetBidderCount(6); err != nil {
		t.Fatalf("SetBidderCount(6): %v", err)
	}
	if opts.TeamCount != 0 {
		t.Errorf("TeamCount = %d after incompatible resize, want 0", opts.TeamCount)
	}

	if err := opts.SetTeamCount(4); err != ErrInvalidOption {
		t.Errorf("SetTeamCount(4) with six bidders error = %v, want %v", err, ErrInvalidOption)
	}
}
