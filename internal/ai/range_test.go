package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokercats/holdem/internal/deck"
	"github.com/pokercats/holdem/internal/game"
)

func TestParseHandClass(t *testing.T) {
	tests := []struct {
		in   string
		want HandClass
	}{
		{"AKs", HandClass{deck.Ace, deck.King, true}},
		{"KAs", HandClass{deck.Ace, deck.King, true}}, // ranks normalize high-first
		{"T9o", HandClass{deck.Ten, deck.Nine, false}},
		{"T9x", HandClass{deck.Ten, deck.Nine, false}}, // any non-'s' marker means offsuit
		{"72", HandClass{deck.Seven, deck.Two, false}},
		{"QQ", HandClass{deck.Queen, deck.Queen, false}},
		{"QQs", HandClass{deck.Queen, deck.Queen, false}}, // pairs ignore the marker
		{"aks", HandClass{deck.Ace, deck.King, true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHandClass(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHandClassErrors(t *testing.T) {
	for _, in := range []string{"", "A", "AKso", "X2", "1K", "A?s"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHandClass(in)
			assert.Error(t, err)
		})
	}
}

func TestHandClassString(t *testing.T) {
	assert.Equal(t, "AKs", HandClass{deck.Ace, deck.King, true}.String())
	assert.Equal(t, "T9o", HandClass{deck.Ten, deck.Nine, false}.String())
	assert.Equal(t, "QQ", HandClass{deck.Queen, deck.Queen, false}.String())
}

func TestClassOf(t *testing.T) {
	hole := deck.NewHoleCards(deck.NewCard(deck.King, deck.Spades), deck.NewCard(deck.Ace, deck.Spades))
	assert.Equal(t, HandClass{deck.Ace, deck.King, true}, ClassOf(hole))

	hole = deck.NewHoleCards(deck.NewCard(deck.Nine, deck.Hearts), deck.NewCard(deck.Nine, deck.Clubs))
	assert.Equal(t, HandClass{deck.Nine, deck.Nine, false}, ClassOf(hole))
}

func TestRangeMembershipIgnoresSuits(t *testing.T) {
	r := NewRanges()
	class, err := ParseHandClass("AKs")
	require.NoError(t, err)
	r.AddOpenRaise(game.CO, class)

	spades := deck.NewHoleCards(deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.King, deck.Spades))
	hearts := deck.NewHoleCards(deck.NewCard(deck.Ace, deck.Hearts), deck.NewCard(deck.King, deck.Hearts))
	offsuit := deck.NewHoleCards(deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.King, deck.Hearts))

	assert.True(t, r.InOpenRaise(game.CO, ClassOf(spades)))
	assert.True(t, r.InOpenRaise(game.CO, ClassOf(hearts)))
	assert.False(t, r.InOpenRaise(game.CO, ClassOf(offsuit)))
	assert.False(t, r.InOpenRaise(game.BU, ClassOf(spades)), "ranges are per position")
}

func TestVsRangesAreKeyedByAggressor(t *testing.T) {
	r := NewRanges()
	class, err := ParseHandClass("JJ")
	require.NoError(t, err)
	r.AddThreeBet(game.BU, game.CO, class)

	assert.True(t, r.InThreeBet(game.BU, game.CO, class))
	assert.False(t, r.InThreeBet(game.BU, game.MP2, class))
	assert.False(t, r.InColdCall(game.BU, game.CO, class))
}
