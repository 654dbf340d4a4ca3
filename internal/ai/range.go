// Package ai provides the chart-driven preflop decision agent. Strategy
// comes from range tables: sets of starting-hand classes assigned to an
// action for a seat position, some keyed additionally by the position of
// the preflop aggressor.
package ai

import (
	"fmt"

	"github.com/pokercats/holdem/internal/deck"
	"github.com/pokercats/holdem/internal/game"
)

// HandClass abstracts hole cards for range membership: ranks high-first plus
// the suited flag. Actual suits are irrelevant to a chart.
type HandClass struct {
	High   deck.Rank
	Low    deck.Rank
	Suited bool
}

// ClassOf abstracts a dealt pair of hole cards into its chart class.
func ClassOf(hole deck.HoleCards) HandClass {
	return HandClass{
		High:   hole.First.Rank,
		Low:    hole.Second.Rank,
		Suited: hole.IsSuited(),
	}
}

// ParseHandClass parses chart notation: two rank characters, optionally
// followed by 's' for suited; any other third character means offsuit.
// Pocket pairs ignore the suited marker.
func ParseHandClass(s string) (HandClass, error) {
	if len(s) != 2 && len(s) != 3 {
		return HandClass{}, fmt.Errorf("ai: hand string %q must be 2 or 3 characters", s)
	}
	high, ok := deck.ParseRank(s[0])
	if !ok {
		return HandClass{}, fmt.Errorf("ai: invalid rank %q in hand string %q", s[0], s)
	}
	low, ok := deck.ParseRank(s[1])
	if !ok {
		return HandClass{}, fmt.Errorf("ai: invalid rank %q in hand string %q", s[1], s)
	}
	if low > high {
		high, low = low, high
	}

	suited := false
	if len(s) == 3 && (s[2] == 's' || s[2] == 'S') && high != low {
		suited = true
	}
	return HandClass{High: high, Low: low, Suited: suited}, nil
}

// String returns the chart notation for the class.
func (hc HandClass) String() string {
	if hc.High == hc.Low {
		return hc.High.String() + hc.Low.String()
	}
	suffix := "o"
	if hc.Suited {
		suffix = "s"
	}
	return hc.High.String() + hc.Low.String() + suffix
}

type classSet map[HandClass]struct{}

// Ranges holds the five preflop tables. Open-raise is keyed by the acting
// seat's position alone; the other four are keyed by acting position and the
// aggressor's position.
type Ranges struct {
	openRaise    map[game.Position]classSet
	coldCall     map[game.Position]map[game.Position]classSet
	threeBet     map[game.Position]map[game.Position]classSet
	callThreeBet map[game.Position]map[game.Position]classSet
	fourBet      map[game.Position]map[game.Position]classSet
}

// NewRanges returns empty tables.
func NewRanges() *Ranges {
	return &Ranges{
		openRaise:    make(map[game.Position]classSet),
		coldCall:     make(map[game.Position]map[game.Position]classSet),
		threeBet:     make(map[game.Position]map[game.Position]classSet),
		callThreeBet: make(map[game.Position]map[game.Position]classSet),
		fourBet:      make(map[game.Position]map[game.Position]classSet),
	}
}

func addClass(table map[game.Position]classSet, pos game.Position, hc HandClass) {
	set, ok := table[pos]
	if !ok {
		set = make(classSet)
		table[pos] = set
	}
	set[hc] = struct{}{}
}

func addVsClass(table map[game.Position]map[game.Position]classSet, pos, vs game.Position, hc HandClass) {
	byVs, ok := table[pos]
	if !ok {
		byVs = make(map[game.Position]classSet)
		table[pos] = byVs
	}
	set, ok := byVs[vs]
	if !ok {
		set = make(classSet)
		byVs[vs] = set
	}
	set[hc] = struct{}{}
}

func contains(table map[game.Position]classSet, pos game.Position, hc HandClass) bool {
	_, ok := table[pos][hc]
	return ok
}

func containsVs(table map[game.Position]map[game.Position]classSet, pos, vs game.Position, hc HandClass) bool {
	_, ok := table[pos][vs][hc]
	return ok
}

// AddOpenRaise puts a class into a position's opening range.
func (r *Ranges) AddOpenRaise(pos game.Position, hc HandClass) {
	addClass(r.openRaise, pos, hc)
}

// AddColdCall puts a class into a position's flat-calling range against an
// open from vs.
func (r *Ranges) AddColdCall(pos, vs game.Position, hc HandClass) {
	addVsClass(r.coldCall, pos, vs, hc)
}

// AddThreeBet puts a class into a position's re-raising range against an
// open from vs.
func (r *Ranges) AddThreeBet(pos, vs game.Position, hc HandClass) {
	addVsClass(r.threeBet, pos, vs, hc)
}

// AddCallThreeBet puts a class into a position's range for calling a re-raise
// from vs.
func (r *Ranges) AddCallThreeBet(pos, vs game.Position, hc HandClass) {
	addVsClass(r.callThreeBet, pos, vs, hc)
}

// AddFourBet puts a class into a position's range for re-raising a re-raise
// from vs.
func (r *Ranges) AddFourBet(pos, vs game.Position, hc HandClass) {
	addVsClass(r.fourBet, pos, vs, hc)
}

// InOpenRaise reports whether the class is in the position's opening range.
func (r *Ranges) InOpenRaise(pos game.Position, hc HandClass) bool {
	return contains(r.openRaise, pos, hc)
}

// InColdCall reports whether the class flat-calls an open from vs.
func (r *Ranges) InColdCall(pos, vs game.Position, hc HandClass) bool {
	return containsVs(r.coldCall, pos, vs, hc)
}

// InThreeBet reports whether the class re-raises an open from vs.
func (r *Ranges) InThreeBet(pos, vs game.Position, hc HandClass) bool {
	return containsVs(r.threeBet, pos, vs, hc)
}

// InCallThreeBet reports whether the class calls a re-raise from vs.
func (r *Ranges) InCallThreeBet(pos, vs game.Position, hc HandClass) bool {
	return containsVs(r.callThreeBet, pos, vs, hc)
}

// InFourBet reports whether the class re-raises a re-raise from vs.
func (r *Ranges) InFourBet(pos, vs game.Position, hc HandClass) bool {
	return containsVs(r.fourBet, pos, vs, hc)
}
