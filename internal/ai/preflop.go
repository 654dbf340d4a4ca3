package ai

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pokercats/holdem/internal/game"
)

// PreflopAI plays preflop from its range tables and checks or folds after
// the flop. Decisions are pure functions of the table state and the tables,
// so identical inputs always produce identical decisions.
type PreflopAI struct {
	ranges *Ranges
	logger *log.Logger
}

// New creates an agent around loaded range tables.
func New(ranges *Ranges, logger *log.Logger) *PreflopAI {
	return &PreflopAI{
		ranges: ranges,
		logger: logger.WithPrefix("ai"),
	}
}

// MakeDecision implements game.Agent. A fold is downgraded to a check when
// checking is free, matching the default-action rule for timed-out turns.
func (ai *PreflopAI) MakeDecision(state game.TableState, validActions []game.ValidAction) game.Decision {
	decision := ai.decide(state)
	if decision.Action == game.Fold {
		for _, va := range validActions {
			if va.Action == game.Check {
				return game.Decision{Action: game.Check, Reasoning: "nothing owed, checking instead of folding"}
			}
		}
	}
	return decision
}

func (ai *PreflopAI) decide(state game.TableState) game.Decision {
	if state.Street != game.Preflop {
		return ai.postflop(state)
	}

	class := ClassOf(state.Hole)

	if state.StreetBet <= state.BigBlind {
		// No more than the blind invested yet: facing at most a single raise.
		if state.HighestBet <= state.BigBlind {
			if ai.ranges.InOpenRaise(state.Position, class) {
				return game.Decision{
					Action:    game.Raise,
					Amount:    ai.openRaiseAmount(state),
					Reasoning: fmt.Sprintf("%s opens from %s", class, state.Position),
				}
			}
			return game.Decision{Action: game.Fold, Reasoning: fmt.Sprintf("%s not in %s opening range", class, state.Position)}
		}

		if !state.HasAggressor {
			ai.logger.Warn("bet outstanding but no aggressor position known, folding")
			return game.Decision{Action: game.Fold}
		}
		vs := state.AggressorPosition
		if ai.ranges.InColdCall(state.Position, vs, class) {
			return game.Decision{
				Action:    game.Call,
				Reasoning: fmt.Sprintf("%s cold-calls the open from %s", class, vs),
			}
		}
		if ai.ranges.InThreeBet(state.Position, vs, class) {
			return game.Decision{
				Action:    game.Raise,
				Amount:    3*state.HighestBet - state.StreetBet,
				Reasoning: fmt.Sprintf("%s three-bets the open from %s", class, vs),
			}
		}
		return game.Decision{Action: game.Fold, Reasoning: fmt.Sprintf("%s folds to the open from %s", class, vs)}
	}

	// More than a blind already invested: the pot has been re-raised.
	if !state.HasAggressor {
		ai.logger.Warn("re-raised pot but no aggressor position known, folding")
		return game.Decision{Action: game.Fold}
	}
	vs := state.AggressorPosition
	if ai.ranges.InCallThreeBet(state.Position, vs, class) {
		return game.Decision{
			Action:    game.Call,
			Reasoning: fmt.Sprintf("%s calls the three-bet from %s", class, vs),
		}
	}
	if ai.ranges.InFourBet(state.Position, vs, class) {
		return game.Decision{
			Action:    game.Raise,
			Amount:    state.HighestBet*5/2 - state.StreetBet,
			Reasoning: fmt.Sprintf("%s four-bets against %s", class, vs),
		}
	}
	return game.Decision{Action: game.Fold, Reasoning: fmt.Sprintf("%s folds to the three-bet from %s", class, vs)}
}

// openRaiseAmount sizes an open to 3.5 big blinds from the middle seats, the
// cutoff and the small blind, and 2.5 from the button. Other seats have no
// sizing rule; returning zero lets the table clamp the raise to its minimum.
func (ai *PreflopAI) openRaiseAmount(state game.TableState) int {
	var target int
	switch state.Position {
	case game.MP2, game.MP3, game.CO, game.SB:
		target = state.BigBlind * 7 / 2
	case game.BU:
		target = state.BigBlind * 5 / 2
	}
	if target == 0 {
		return 0
	}
	return target - state.StreetBet
}

// postflop is a stub strategy: fold to any bet, otherwise check.
func (ai *PreflopAI) postflop(state game.TableState) game.Decision {
	if state.HighestBet > state.StreetBet {
		return game.Decision{Action: game.Fold, Reasoning: "no postflop strategy, folding to a bet"}
	}
	return game.Decision{Action: game.Check, Reasoning: "no postflop strategy, checking"}
}
