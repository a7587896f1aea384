package shared

import "github.com/google/uuid"

// Team represents a scoring side. Several bidders may share one team; the
// card pile accumulates every trick the team's bidders win during a round.
type Team struct {
	ID    string
	Name  string
	Cards []Card
}

// NewTeam creates a team with a unique ID.
func NewTeam(name string) *Team {
	return &Team{
		ID:    uuid.NewString(),
		Name:  name,
		Cards: []Card{},
	}
}

// TakeTrick adds a won trick's cards to the team pile.
func (t *Team) TakeTrick(cards []Card) {
	t.Cards = append(t.Cards, cards...)
}

// ClearCards empties and returns the team pile.
func (t *Team) ClearCards() []Card {
	cards := t.Cards
	t.Cards = []Card{}
	return cards
}

// Equal reports whether both handles refer to the same team.
func (t *Team) Equal(other *Team) bool {
	return other != nil && t.ID == other.ID
}
