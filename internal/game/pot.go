package game

// Pot is one pot on the table: the chips routed into it and the players who
// can win it. Index 0 in the hand's ledger is the main pot.
type Pot struct {
	Size     int
	eligible []*Player
}

// Eligible returns the players who can win this pot, in join order.
func (pot *Pot) Eligible() []*Player {
	return pot.eligible
}

// Contains reports whether the player is eligible for this pot.
func (pot *Pot) Contains(p *Player) bool {
	for _, e := range pot.eligible {
		if e == p {
			return true
		}
	}
	return false
}

// AddEligible registers a player as able to win this pot.
func (pot *Pot) AddEligible(p *Player) {
	if !pot.Contains(p) {
		pot.eligible = append(pot.eligible, p)
	}
}

// RemoveEligible drops a player from the pot, typically on a fold.
func (pot *Pot) RemoveEligible(p *Player) {
	for i, e := range pot.eligible {
		if e == p {
			pot.eligible = append(pot.eligible[:i], pot.eligible[i+1:]...)
			return
		}
	}
}

// hasAllInPlayer reports whether any eligible player is all-in. Contribution
// routing skips such pots.
func (pot *Pot) hasAllInPlayer() bool {
	for _, e := range pot.eligible {
		if e.IsAllIn() {
			return true
		}
	}
	return false
}
