package pitch

// GameError is a failure that aborts the current game. Validation outcomes
// are not errors; they are surfaced back to the acting collaborator as
// BidValidation / PlayValidation values instead.
type GameError string

func (e GameError) Error() string { return string(e) }

const (
	// ErrTooManyAttempts ends the game after a collaborator keeps returning
	// invalid bids or plays.
	ErrTooManyAttempts GameError = "too many invalid attempts"
	// ErrNoTrump means a trick completed without the round's trump being set.
	ErrNoTrump GameError = "no trump established"
	// ErrNoTrickWinner means a completed trick resolved to no winning play.
	ErrNoTrickWinner GameError = "no trick winner"
	// ErrExtraJack means two jacks of trump showed up in one round.
	ErrExtraJack GameError = "more than one jack of trump"
	// ErrInvalidOption rejects an option value outside its validated set.
	ErrInvalidOption GameError = "option value not allowed"
)
