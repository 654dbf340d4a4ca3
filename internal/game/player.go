package game

import "github.com/pokercats/holdem/internal/deck"

// PlayerKind says where a seat's decisions come from.
type PlayerKind int

const (
	Human PlayerKind = iota
	AI
)

func (k PlayerKind) String() string {
	if k == Human {
		return "human"
	}
	return "ai"
}

// Player is the per-seat mutable state. It persists across hands; hole cards
// and bets are cleared as the hand and street lifecycles dictate.
type Player struct {
	Name     string
	Seat     int
	Kind     PlayerKind
	Position Position

	Hole     deck.HoleCards
	HasCards bool

	StreetBet  int // chips put in on the current street
	TotalBet   int // chips put in across the whole hand, drives side pots
	LastAction Action

	chips int
}

// NewPlayer seats a player with a starting stack.
func NewPlayer(name string, seat int, chips int, kind PlayerKind) *Player {
	return &Player{Name: name, Seat: seat, Kind: kind, chips: chips}
}

// Chips returns the player's stack.
func (p *Player) Chips() int {
	return p.chips
}

// SetChips assigns the stack. A negative amount is clamped to zero; the
// return value reports whether clamping happened so the caller can log it.
func (p *Player) SetChips(amount int) (clamped bool) {
	if amount < 0 {
		p.chips = 0
		return true
	}
	p.chips = amount
	return false
}

// AddChips credits winnings to the stack.
func (p *Player) AddChips(amount int) {
	p.chips += amount
}

// IsAllIn reports whether the player's stack has reached zero through
// betting.
func (p *Player) IsAllIn() bool {
	return p.chips == 0
}

// HasActed reports whether the player has acted on the current street.
func (p *Player) HasActed() bool {
	return p.LastAction != NoAction
}

// GiveHoleCards assigns the player's two private cards for the hand.
func (p *Player) GiveHoleCards(hole deck.HoleCards) {
	p.Hole = hole
	p.HasCards = true
}

// ClearHoleCards removes the hole cards at the end of a hand.
func (p *Player) ClearHoleCards() {
	p.Hole = deck.HoleCards{}
	p.HasCards = false
}
