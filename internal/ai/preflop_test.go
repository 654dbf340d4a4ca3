package ai

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokercats/holdem/internal/deck"
	"github.com/pokercats/holdem/internal/game"
)

func mustClass(t *testing.T, s string) HandClass {
	t.Helper()
	class, err := ParseHandClass(s)
	require.NoError(t, err)
	return class
}

func holeFor(t *testing.T, s string) deck.HoleCards {
	t.Helper()
	cards := deck.MustParseCards(s)
	require.Len(t, cards, 2)
	return deck.NewHoleCards(cards[0], cards[1])
}

func testRanges(t *testing.T) *Ranges {
	t.Helper()
	r := NewRanges()
	r.AddOpenRaise(game.CO, mustClass(t, "AKs"))
	r.AddOpenRaise(game.BU, mustClass(t, "AKs"))
	r.AddOpenRaise(game.UTG1, mustClass(t, "AKs"))
	r.AddColdCall(game.BU, game.CO, mustClass(t, "99"))
	r.AddThreeBet(game.BU, game.CO, mustClass(t, "QQ"))
	r.AddCallThreeBet(game.CO, game.BU, mustClass(t, "JJ"))
	r.AddFourBet(game.CO, game.BU, mustClass(t, "KK"))
	return r
}

func newTestAI(t *testing.T) *PreflopAI {
	t.Helper()
	return New(testRanges(t), log.New(io.Discard))
}

func preflopState(position game.Position, hole deck.HoleCards) game.TableState {
	return game.TableState{
		Street:   game.Preflop,
		BigBlind: 20,
		Position: position,
		Hole:     hole,
		Chips:    1000,
	}
}

func TestOpenRaise(t *testing.T) {
	ai := newTestAI(t)

	t.Run("cutoff opens 3.5 big blinds", func(t *testing.T) {
		state := preflopState(game.CO, holeFor(t, "AsKs"))
		state.HighestBet = 20

		decision := ai.MakeDecision(state, nil)
		assert.Equal(t, game.Raise, decision.Action)
		assert.Equal(t, 70, decision.Amount)
	})

	t.Run("button opens 2.5 big blinds", func(t *testing.T) {
		state := preflopState(game.BU, holeFor(t, "AhKh"))
		state.HighestBet = 20

		decision := ai.MakeDecision(state, nil)
		assert.Equal(t, game.Raise, decision.Action)
		assert.Equal(t, 50, decision.Amount)
	})

	t.Run("seat without a sizing rule raises the table minimum", func(t *testing.T) {
		state := preflopState(game.UTG1, holeFor(t, "AsKs"))
		state.HighestBet = 20

		decision := ai.MakeDecision(state, nil)
		assert.Equal(t, game.Raise, decision.Action)
		assert.Equal(t, 0, decision.Amount)
	})

	t.Run("hand outside the range folds", func(t *testing.T) {
		state := preflopState(game.CO, holeFor(t, "7s2d"))
		state.HighestBet = 20

		decision := ai.MakeDecision(state, nil)
		assert.Equal(t, game.Fold, decision.Action)
	})

	t.Run("offsuit combo misses a suited-only range", func(t *testing.T) {
		state := preflopState(game.CO, holeFor(t, "AsKd"))
		state.HighestBet = 20

		decision := ai.MakeDecision(state, nil)
		assert.Equal(t, game.Fold, decision.Action)
	})
}

func TestFacingAnOpen(t *testing.T) {
	ai := newTestAI(t)

	open := func(hole deck.HoleCards) game.TableState {
		state := preflopState(game.BU, hole)
		state.HighestBet = 70
		state.AggressorPosition = game.CO
		state.HasAggressor = true
		return state
	}

	t.Run("cold-call range calls", func(t *testing.T) {
		decision := ai.MakeDecision(open(holeFor(t, "9s9d")), nil)
		assert.Equal(t, game.Call, decision.Action)
	})

	t.Run("three-bet range raises to triple the open", func(t *testing.T) {
		decision := ai.MakeDecision(open(holeFor(t, "QsQd")), nil)
		assert.Equal(t, game.Raise, decision.Action)
		assert.Equal(t, 210, decision.Amount)
	})

	t.Run("neither range folds", func(t *testing.T) {
		decision := ai.MakeDecision(open(holeFor(t, "8s3c")), nil)
		assert.Equal(t, game.Fold, decision.Action)
	})

	t.Run("range against a different opener does not apply", func(t *testing.T) {
		state := open(holeFor(t, "QsQd"))
		state.AggressorPosition = game.MP2
		decision := ai.MakeDecision(state, nil)
		assert.Equal(t, game.Fold, decision.Action)
	})
}

func TestFacingAThreeBet(t *testing.T) {
	ai := newTestAI(t)

	threeBet := func(hole deck.HoleCards) game.TableState {
		state := preflopState(game.CO, hole)
		state.StreetBet = 70 // our open is already in
		state.HighestBet = 210
		state.AggressorPosition = game.BU
		state.HasAggressor = true
		return state
	}

	t.Run("call range calls", func(t *testing.T) {
		decision := ai.MakeDecision(threeBet(holeFor(t, "JsJd")), nil)
		assert.Equal(t, game.Call, decision.Action)
	})

	t.Run("four-bet range raises to 2.5x", func(t *testing.T) {
		decision := ai.MakeDecision(threeBet(holeFor(t, "KsKd")), nil)
		assert.Equal(t, game.Raise, decision.Action)
		assert.Equal(t, 455, decision.Amount) // 210*2.5 - 70
	})

	t.Run("everything else folds", func(t *testing.T) {
		decision := ai.MakeDecision(threeBet(holeFor(t, "AsKs")), nil)
		assert.Equal(t, game.Fold, decision.Action)
	})
}

func TestFoldDowngradesToFreeCheck(t *testing.T) {
	ai := newTestAI(t)

	// Big blind with junk and no raise: nothing owed, so check.
	state := preflopState(game.BB, holeFor(t, "7s2d"))
	state.StreetBet = 20
	state.HighestBet = 20

	valid := []game.ValidAction{{Action: game.Fold}, {Action: game.Check}}
	decision := ai.MakeDecision(state, valid)
	assert.Equal(t, game.Check, decision.Action)
}

func TestPostflopStub(t *testing.T) {
	ai := newTestAI(t)

	state := preflopState(game.CO, holeFor(t, "AsKs"))
	state.Street = game.Flop

	t.Run("checks when free", func(t *testing.T) {
		decision := ai.MakeDecision(state, nil)
		assert.Equal(t, game.Check, decision.Action)
	})

	t.Run("folds to any bet", func(t *testing.T) {
		bet := state
		bet.HighestBet = 60
		decision := ai.MakeDecision(bet, nil)
		assert.Equal(t, game.Fold, decision.Action)
	})
}

func TestDecisionsAreDeterministic(t *testing.T) {
	ai := newTestAI(t)
	state := preflopState(game.BU, holeFor(t, "QsQd"))
	state.HighestBet = 70
	state.AggressorPosition = game.CO
	state.HasAggressor = true

	first := ai.MakeDecision(state, nil)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ai.MakeDecision(state, nil))
	}
}
