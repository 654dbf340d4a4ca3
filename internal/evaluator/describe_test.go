package evaluator

import (
	"testing"

	"github.com/pokercats/holdem/internal/deck"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		info HandInfo
		want string
	}{
		{"high card", HandInfo{Type: HighCard, MainRank: deck.Ace}, "High card Ace"},
		{"pair", HandInfo{Type: Pair, MainRank: deck.Queen}, "Pair of Queens"},
		{"two pairs", HandInfo{Type: TwoPairs, MainRank: deck.Ace, SecondRank: deck.Eight}, "Two Pairs, Aces and Eights"},
		{"trips", HandInfo{Type: ThreeOfAKind, MainRank: deck.Six}, "Three of a Kind, Sixes"},
		{"wheel", HandInfo{Type: Straight, MainRank: deck.Five}, "Straight, Five high"},
		{"flush", HandInfo{Type: Flush, MainRank: deck.King, FlushSuit: deck.Hearts, HasFlushSuit: true}, "Flush, King high"},
		{"full house", HandInfo{Type: FullHouse, MainRank: deck.King, SecondRank: deck.Nine}, "Kings full of Nines"},
		{"quads", HandInfo{Type: FourOfAKind, MainRank: deck.Seven}, "Four of a Kind, Sevens"},
		{"straight flush", HandInfo{Type: StraightFlush, MainRank: deck.Nine}, "Straight Flush, Nine high"},
		{"royal flush", HandInfo{Type: RoyalFlush, MainRank: deck.Ace}, "Royal Flush!"},
		{"invalid", HandInfo{Type: Invalid}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.info); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
