package game

import (
	"errors"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/pokercats/holdem/internal/evaluator"
)

// ErrBadBlindSizes is returned when a hand is created with a non-positive big
// blind or a negative ante.
var ErrBadBlindSizes = errors.New("game: big blind must be positive and ante non-negative")

// Hand is one full deal: the players still live, the pot ledger and the
// blind/ante sizes. It is created per deal and discarded at hand end.
type Hand struct {
	involved []*Player
	pots     []*Pot

	bigBlind int
	ante     int

	// contributions tracks every chip a player has routed into the ledger
	// this hand, including blinds, antes and chips from players who later
	// folded. Side-pot reconciliation is computed from these totals.
	contributions map[*Player]int

	infos map[*Player]evaluator.HandInfo

	logger *log.Logger
}

// NewHand starts a hand for the given players. The main pot is opened
// immediately; blinds are posted separately with PostBlindsAndAntes.
func NewHand(players []*Player, bigBlind, ante int, logger *log.Logger) (*Hand, error) {
	if bigBlind <= 0 || ante < 0 {
		return nil, ErrBadBlindSizes
	}
	h := &Hand{
		involved:      slices.Clone(players),
		pots:          []*Pot{{}},
		bigBlind:      bigBlind,
		ante:          ante,
		contributions: make(map[*Player]int),
		infos:         make(map[*Player]evaluator.HandInfo),
		logger:        logger,
	}
	return h, nil
}

// Involved returns the players still in the hand.
func (h *Hand) Involved() []*Player {
	return h.involved
}

// IsInvolved reports whether the player has not folded or been removed.
func (h *Hand) IsInvolved(p *Player) bool {
	return slices.Contains(h.involved, p)
}

// HasOnePlayerLeft reports whether everyone else has folded, in which case
// the hand ends without a showdown.
func (h *Hand) HasOnePlayerLeft() bool {
	return len(h.involved) == 1
}

// Pots returns the ledger, main pot first.
func (h *Hand) Pots() []*Pot {
	return h.pots
}

// MainPot returns the first pot of the ledger.
func (h *Hand) MainPot() *Pot {
	return h.pots[0]
}

// PotTotal returns the chips across all pots.
func (h *Hand) PotTotal() int {
	total := 0
	for _, pot := range h.pots {
		total += pot.Size
	}
	return total
}

// BigBlind returns the hand's big blind size.
func (h *Hand) BigBlind() int {
	return h.bigBlind
}

// PostBlindsAndAntes debits the small blind, big blind and antes into the
// main pot. Blinds count toward the posting player's street bet; antes do
// not. Blind posters are pre-registered as eligible for the main pot.
func (h *Hand) PostBlindsAndAntes() {
	for _, p := range h.involved {
		if p.Position == SB {
			h.postForced(p, h.bigBlind/2, true)
		} else if p.Position == BB {
			h.postForced(p, h.bigBlind, true)
		}
		if h.ante > 0 {
			h.postForced(p, h.ante, false)
		}
	}
}

func (h *Hand) postForced(p *Player, amount int, isBlind bool) {
	if amount > p.Chips() {
		amount = p.Chips()
	}
	if clamped := p.SetChips(p.Chips() - amount); clamped {
		h.logger.Warn("chip count clamped to zero", "player", p.Name)
	}
	if isBlind {
		p.StreetBet += amount
		h.MainPot().AddEligible(p)
	}
	p.TotalBet += amount
	h.contributions[p] += amount
	h.MainPot().Size += amount
}

// PutChipsToPot moves chips from the player's stack into the ledger. The
// chips land in the first pot whose eligible players include no one all-in;
// if every pot has an all-in player a new pot is opened. Amounts beyond the
// player's stack are capped there, putting the player all-in.
func (h *Hand) PutChipsToPot(p *Player, amount int) int {
	if amount > p.Chips() {
		amount = p.Chips()
	}
	if amount <= 0 {
		return 0
	}

	var target *Pot
	for _, pot := range h.pots {
		if !pot.hasAllInPlayer() {
			target = pot
			break
		}
	}
	if target == nil {
		target = &Pot{}
		h.pots = append(h.pots, target)
	}

	if clamped := p.SetChips(p.Chips() - amount); clamped {
		h.logger.Warn("chip count clamped to zero", "player", p.Name)
	}
	p.StreetBet += amount
	p.TotalBet += amount
	h.contributions[p] += amount
	target.AddEligible(p)
	target.Size += amount
	return amount
}

// RemovePlayer folds a player out of the hand and out of every pot's
// eligible set. Their contributed chips stay in the ledger.
func (h *Hand) RemovePlayer(p *Player) {
	for i, involved := range h.involved {
		if involved == p {
			h.involved = append(h.involved[:i], h.involved[i+1:]...)
			break
		}
	}
	for _, pot := range h.pots {
		pot.RemoveEligible(p)
	}
}

// HighestBet returns the largest current-street bet among involved players.
func (h *Hand) HighestBet() int {
	highest := 0
	for _, p := range h.involved {
		if p.StreetBet > highest {
			highest = p.StreetBet
		}
	}
	return highest
}

// HighestBetPosition returns the position of the player holding the current
// highest street bet: the open raiser or first bettor, even after callers
// match the amount. The boolean is false when no one has bet.
func (h *Hand) HighestBetPosition() (Position, bool) {
	var position Position
	highest := 0
	found := false
	for _, p := range h.involved {
		if p.StreetBet > highest {
			highest = p.StreetBet
			position = p.Position
			found = true
		}
	}
	return position, found
}

// ResetStreet clears street bets and last actions for the next street.
func (h *Hand) ResetStreet() {
	for _, p := range h.involved {
		p.StreetBet = 0
		p.LastAction = NoAction
	}
}

// ReconcileSidePots rebuilds the ledger from whole-hand contribution totals
// once a street closes with one or more players all-in. Each all-in total
// caps a pot level; a player wins from a level only if they contributed past
// the previous one. Folded players' chips stay in the amounts but never in
// the eligible sets, so the ledger total is preserved.
func (h *Hand) ReconcileSidePots() {
	levels := make([]int, 0, len(h.involved))
	for _, p := range h.involved {
		if p.IsAllIn() && p.TotalBet > 0 && !slices.Contains(levels, p.TotalBet) {
			levels = append(levels, p.TotalBet)
		}
	}
	if len(levels) == 0 {
		return
	}
	slices.Sort(levels)

	rebuilt := make([]*Pot, 0, len(levels)+1)
	prev := 0
	for _, level := range levels {
		pot := &Pot{}
		for _, p := range h.involved {
			if p.TotalBet > prev {
				pot.AddEligible(p)
			}
		}
		for _, total := range h.contributions {
			share := min(total, level) - prev
			if share > 0 {
				pot.Size += share
			}
		}
		if pot.Size > 0 && len(pot.eligible) > 0 {
			rebuilt = append(rebuilt, pot)
		}
		prev = level
	}

	// Chips above the highest all-in level keep a live pot of their own.
	overflow := &Pot{}
	for _, p := range h.involved {
		if p.TotalBet > prev {
			overflow.AddEligible(p)
		}
	}
	for _, total := range h.contributions {
		if total > prev {
			overflow.Size += total - prev
		}
	}
	if overflow.Size > 0 && len(overflow.eligible) > 0 {
		rebuilt = append(rebuilt, overflow)
	}

	if len(rebuilt) == 0 {
		rebuilt = append(rebuilt, &Pot{})
	}
	h.pots = rebuilt
}

// SetHandInfo records a player's evaluated hand for winner determination.
func (h *Hand) SetHandInfo(p *Player, info evaluator.HandInfo) {
	h.infos[p] = info
}

// HandInfoFor returns the recorded evaluation for a player.
func (h *Hand) HandInfoFor(p *Player) evaluator.HandInfo {
	return h.infos[p]
}

// Winners determines who takes a pot. A lone remaining player wins outright;
// otherwise every eligible player whose hand ties the strongest evaluation
// shares the pot. The result does not depend on eligible-player order.
func (h *Hand) Winners(pot *Pot) []*Player {
	if len(h.involved) == 1 {
		return []*Player{h.involved[0]}
	}

	var (
		best    evaluator.HandInfo
		winners []*Player
	)
	for _, p := range pot.Eligible() {
		info, ok := h.infos[p]
		if !ok || info.Type == evaluator.Invalid {
			h.logger.Error("player reached showdown without an evaluated hand", "player", p.Name)
			continue
		}
		switch info.Compare(best) {
		case 1:
			best = info
			winners = winners[:0]
			winners = append(winners, p)
		case 0:
			winners = append(winners, p)
		}
	}
	return winners
}

// Payout records one pot share paid to one player.
type Payout struct {
	Player   *Player
	Amount   int
	PotIndex int
}

// PayOutPots splits each pot evenly among its winners. Integer division
// leaves a remainder on non-even splits; it is paid to the first winner so
// no chips leave the table.
func (h *Hand) PayOutPots() []Payout {
	var payouts []Payout
	for i, pot := range h.pots {
		winners := h.Winners(pot)
		if len(winners) == 0 {
			if pot.Size > 0 {
				h.logger.Error("pot has no winners, chips withheld", "pot", i, "size", pot.Size)
			}
			continue
		}
		share := pot.Size / len(winners)
		remainder := pot.Size % len(winners)
		for w, winner := range winners {
			amount := share
			if w == 0 {
				amount += remainder
			}
			if amount == 0 {
				continue
			}
			winner.AddChips(amount)
			payouts = append(payouts, Payout{Player: winner, Amount: amount, PotIndex: i})
		}
	}
	return payouts
}
