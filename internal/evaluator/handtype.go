// Package evaluator ranks the best five-card hand reachable from a player's
// hole cards and the community board.
package evaluator

import "github.com/pokercats/holdem/internal/deck"

// HandType classifies a hand. Values order from weakest to strongest so the
// type alone is the primary comparison key.
type HandType int

const (
	Invalid HandType = iota
	HighCard
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the readable name of the hand type.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Invalid"
	}
}

// HandInfo is the ranked result of an evaluation. MainRank and SecondRank are
// the tie-break ranks for the hand type (pair rank, straight high card, set
// and pair of a full house, and so on); a zero Rank means the slot does not
// apply. FlushSuit is meaningful only when HasFlushSuit is set, for flushes,
// straight flushes and royal flushes.
type HandInfo struct {
	Type         HandType
	MainRank     deck.Rank
	SecondRank   deck.Rank
	FlushSuit    deck.Suit
	HasFlushSuit bool
}

// Compare orders hands by type, then main rank, then second rank. It returns
// -1 if h is weaker than other, 0 on a tie and 1 if h is stronger.
func (h HandInfo) Compare(other HandInfo) int {
	if h.Type != other.Type {
		if h.Type < other.Type {
			return -1
		}
		return 1
	}
	if h.MainRank != other.MainRank {
		if h.MainRank < other.MainRank {
			return -1
		}
		return 1
	}
	if h.SecondRank != other.SecondRank {
		if h.SecondRank < other.SecondRank {
			return -1
		}
		return 1
	}
	return 0
}
