package game

import "github.com/pokercats/holdem/internal/deck"

// Decision is what an agent wants to do with its turn.
type Decision struct {
	Action    Action
	Amount    int    // chips to contribute for Bet/Raise
	Reasoning string // human-readable explanation for logs and histories
}

// ValidAction is one legally available action for the acting seat. MinAmount
// and MaxAmount bound the contribution for Bet and Raise; for Call both hold
// the amount owed.
type ValidAction struct {
	Action    Action
	MinAmount int
	MaxAmount int
}

// TableState is the immutable snapshot handed to an agent when it is asked
// for a decision. Only the acting player's own hole cards are included.
type TableState struct {
	Street            Street
	BigBlind          int
	PotTotal          int
	HighestBet        int
	AggressorPosition Position // position of the highest bettor
	HasAggressor      bool
	Board             []deck.Card

	// Acting player's view of itself.
	Position  Position
	Hole      deck.HoleCards
	StreetBet int
	Chips     int
}

// Agent decides for a seat. Agents receive immutable state and return a
// decision; they never mutate the game directly.
type Agent interface {
	MakeDecision(state TableState, validActions []ValidAction) Decision
}
