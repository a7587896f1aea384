package shared

// CardError is a structural failure in the card layer.
type CardError string

func (e CardError) Error() string { return string(e) }

const (
	// ErrDeckEmpty is returned when a deal needs more cards than the deck holds.
	ErrDeckEmpty CardError = "deck is empty"
	// ErrCutBounds is returned when a cut length falls outside the allowed range.
	ErrCutBounds CardError = "cut length out of bounds"
	// ErrCardNotFound is returned when a bidder plays a card they do not hold.
	ErrCardNotFound CardError = "card not in hand"
	// ErrBidderNotSeated is returned when a seat lookup misses.
	ErrBidderNotSeated CardError = "bidder not seated at table"
)
