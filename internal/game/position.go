package game

import "fmt"

// Position is a seat's order-of-action slot. Values run in preflop act-first
// to act-last order, so BB is always the highest occupied position. Tables
// smaller than nine seats skip the leading positions.
type Position int

const (
	UTG1 Position = iota
	UTG2
	MP1
	MP2
	MP3
	CO
	BU
	SB
	BB

	positionCount = 9
)

// String returns the position code used in range charts and logs.
func (p Position) String() string {
	if p < UTG1 || p > BB {
		return "invalid"
	}
	return [...]string{"UTG1", "UTG2", "MP1", "MP2", "MP3", "CO", "BU", "SB", "BB"}[p]
}

// ParsePosition maps a position code to its Position.
func ParsePosition(code string) (Position, error) {
	switch code {
	case "UTG1":
		return UTG1, nil
	case "UTG2":
		return UTG2, nil
	case "MP1":
		return MP1, nil
	case "MP2":
		return MP2, nil
	case "MP3":
		return MP3, nil
	case "CO":
		return CO, nil
	case "BU":
		return BU, nil
	case "SB":
		return SB, nil
	case "BB":
		return BB, nil
	default:
		return 0, fmt.Errorf("game: unknown position code %q", code)
	}
}

// IsValid reports whether p names one of the nine seats.
func (p Position) IsValid() bool {
	return p >= UTG1 && p <= BB
}

// IsBlind reports whether p posts a forced blind.
func (p Position) IsBlind() bool {
	return p == SB || p == BB
}

// FirstPosition returns the first occupied position for a table of the given
// size: the blinds fill from the back, so a 6-max table runs MP2 through BB
// and a heads-up table is just SB and BB.
func FirstPosition(tableSize int) Position {
	return Position(positionCount - tableSize)
}

// NextHandPosition rotates a position for the next hand. Positions decrement
// toward UTG1; falling off the front of the occupied span wraps around to BB.
func NextHandPosition(p Position, tableSize int) Position {
	next := p - 1
	if next < FirstPosition(tableSize) || !next.IsValid() {
		return BB
	}
	return next
}
