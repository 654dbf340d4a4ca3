package game

import "fmt"

// Street is the betting round the hand is currently in. Transitions are
// strictly forward; a new hand always begins at Preflop.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	if s < Preflop || s > Showdown {
		return "invalid"
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action is a player's move. NoAction marks a player who has not acted yet
// this street.
type Action int

const (
	NoAction Action = iota
	Fold
	Check
	Call
	Bet
	Raise
)

func (a Action) String() string {
	if a < NoAction || a > Raise {
		return "invalid"
	}
	return [...]string{"none", "fold", "check", "call", "bet", "raise"}[a]
}

// ParseAction maps an action name to its Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "bet":
		return Bet, nil
	case "raise":
		return Raise, nil
	default:
		return NoAction, fmt.Errorf("game: unknown action %q", s)
	}
}
