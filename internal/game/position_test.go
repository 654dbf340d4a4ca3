package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstPosition(t *testing.T) {
	tests := []struct {
		tableSize int
		want      Position
	}{
		{2, SB},
		{3, BU},
		{4, CO},
		{6, MP2},
		{9, UTG1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FirstPosition(tt.tableSize), "table size %d", tt.tableSize)
	}
}

func TestNextHandPosition(t *testing.T) {
	t.Run("decrements toward the front", func(t *testing.T) {
		assert.Equal(t, SB, NextHandPosition(BB, 6))
		assert.Equal(t, CO, NextHandPosition(BU, 6))
	})

	t.Run("wraps from the front to the big blind", func(t *testing.T) {
		assert.Equal(t, BB, NextHandPosition(MP2, 6))
		assert.Equal(t, BB, NextHandPosition(SB, 2))
		assert.Equal(t, BB, NextHandPosition(UTG1, 9))
	})

	t.Run("full cycle returns to start", func(t *testing.T) {
		const tableSize = 6
		p := CO
		for i := 0; i < tableSize; i++ {
			p = NextHandPosition(p, tableSize)
		}
		assert.Equal(t, CO, p)
	})
}

func TestParsePosition(t *testing.T) {
	for _, p := range []Position{UTG1, UTG2, MP1, MP2, MP3, CO, BU, SB, BB} {
		parsed, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePosition("HJ")
	assert.Error(t, err)
}

func TestPositionIsBlind(t *testing.T) {
	assert.True(t, SB.IsBlind())
	assert.True(t, BB.IsBlind())
	assert.False(t, BU.IsBlind())
	assert.False(t, UTG1.IsBlind())
}
