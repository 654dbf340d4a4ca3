package evaluator

import (
	"errors"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/pokercats/holdem/internal/deck"
)

// ErrBadBoardCount is returned when the board has a card count no street can
// produce. Callers must not use the accompanying HandInfo.
var ErrBadBoardCount = errors.New("evaluator: board must have 0, 3, 4 or 5 cards")

// Evaluator ranks hands. It is injected into the table orchestrator rather
// than reached through a global.
type Evaluator struct {
	logger *log.Logger
}

// New returns an Evaluator that logs precondition violations to the given
// logger.
func New(logger *log.Logger) *Evaluator {
	return &Evaluator{logger: logger.WithPrefix("evaluator")}
}

// Evaluate ranks the best hand from two hole cards plus the board. An empty
// board is the pre-deal hint mode: only the hole cards are classified, as a
// pair or a high card. Otherwise the board must hold 3, 4 or 5 cards.
//
// Checks run from royal flush down to high card and stop at the first match.
func (e *Evaluator) Evaluate(hole deck.HoleCards, board []deck.Card) (HandInfo, error) {
	if len(board) == 0 {
		return evaluateHoleOnly(hole), nil
	}
	if len(board) < 3 || len(board) > 5 {
		e.logger.Error("board card count outside any street", "count", len(board))
		return HandInfo{Type: Invalid}, ErrBadBoardCount
	}

	cards := make([]deck.Card, 0, 2+len(board))
	cards = append(cards, hole.First, hole.Second)
	cards = append(cards, board...)

	if suit, rank, ok := findStraightFlush(cards); ok {
		info := HandInfo{Type: StraightFlush, MainRank: rank, FlushSuit: suit, HasFlushSuit: true}
		if rank == deck.Ace {
			info.Type = RoyalFlush
		}
		return info, nil
	}
	if rank, ok := findOfAKind(cards, 3); ok {
		return HandInfo{Type: FourOfAKind, MainRank: rank}, nil
	}
	if set, pair, ok := findFullHouse(cards); ok {
		return HandInfo{Type: FullHouse, MainRank: set, SecondRank: pair}, nil
	}
	if suit, rank, ok := findFlush(cards); ok {
		return HandInfo{Type: Flush, MainRank: rank, FlushSuit: suit, HasFlushSuit: true}, nil
	}
	if rank, ok := findStraight(cards); ok {
		return HandInfo{Type: Straight, MainRank: rank}, nil
	}
	if rank, ok := findOfAKind(cards, 2); ok {
		return HandInfo{Type: ThreeOfAKind, MainRank: rank}, nil
	}
	if high, low, ok := findTwoPairs(cards); ok {
		return HandInfo{Type: TwoPairs, MainRank: high, SecondRank: low}, nil
	}
	if rank, ok := findOfAKind(cards, 1); ok {
		return HandInfo{Type: Pair, MainRank: rank}, nil
	}
	return HandInfo{Type: HighCard, MainRank: highestRank(cards)}, nil
}

func evaluateHoleOnly(hole deck.HoleCards) HandInfo {
	if hole.IsPocketPair() {
		return HandInfo{Type: Pair, MainRank: hole.First.Rank}
	}
	return HandInfo{Type: HighCard, MainRank: hole.First.Rank}
}

// matchesAfter counts cards beyond index i sharing cards[i]'s rank. At a
// rank's first occurrence this is card-count-1, so 3 means quads, 2 trips
// and 1 a pair.
func matchesAfter(cards []deck.Card, i int) int {
	matches := 0
	for j := i + 1; j < len(cards); j++ {
		if cards[j].Rank == cards[i].Rank {
			matches++
		}
	}
	return matches
}

func firstOccurrence(cards []deck.Card, i int) bool {
	for j := 0; j < i; j++ {
		if cards[j].Rank == cards[i].Rank {
			return false
		}
	}
	return true
}

// findOfAKind reports the first rank whose first occurrence has exactly
// wantMatches later cards of the same rank.
func findOfAKind(cards []deck.Card, wantMatches int) (deck.Rank, bool) {
	for i := range cards {
		if matchesAfter(cards, i) == wantMatches {
			return cards[i].Rank, true
		}
	}
	return 0, false
}

// findFullHouse looks for a trip-level rank plus a distinct pair-level rank.
// When two ranks both reach trip level, the higher rank is the set and the
// lower fills the pair slot.
func findFullHouse(cards []deck.Card) (setRank, pairRank deck.Rank, ok bool) {
	var trips, pairs []deck.Rank
	for i := range cards {
		if !firstOccurrence(cards, i) {
			continue
		}
		switch matchesAfter(cards, i) {
		case 2:
			trips = append(trips, cards[i].Rank)
		case 1:
			pairs = append(pairs, cards[i].Rank)
		}
	}
	if len(trips) == 0 {
		return 0, 0, false
	}
	setRank = slices.Max(trips)
	for _, r := range trips {
		if r != setRank && r > pairRank {
			pairRank = r
		}
	}
	for _, r := range pairs {
		if r > pairRank {
			pairRank = r
		}
	}
	if pairRank == 0 {
		return 0, 0, false
	}
	return setRank, pairRank, true
}

func findTwoPairs(cards []deck.Card) (high, low deck.Rank, ok bool) {
	var pairs []deck.Rank
	for i := range cards {
		if firstOccurrence(cards, i) && matchesAfter(cards, i) == 1 {
			pairs = append(pairs, cards[i].Rank)
		}
	}
	if len(pairs) < 2 {
		return 0, 0, false
	}
	slices.SortFunc(pairs, func(a, b deck.Rank) int { return int(b) - int(a) })
	return pairs[0], pairs[1], true
}

// findFlush counts cards per suit; a suit holding five or more is a flush
// and its highest card is the tie-break rank.
func findFlush(cards []deck.Card) (deck.Suit, deck.Rank, bool) {
	var (
		bestSuit  deck.Suit
		bestCount int
		bestRank  deck.Rank
	)
	for _, suit := range deck.Suits() {
		count := 0
		var high deck.Rank
		for _, c := range cards {
			if c.Suit == suit {
				count++
				if c.Rank > high {
					high = c.Rank
				}
			}
		}
		if count > bestCount {
			bestCount = count
			bestSuit = suit
			bestRank = high
		}
	}
	if bestCount < 5 {
		return 0, 0, false
	}
	return bestSuit, bestRank, true
}

// findStraight sorts by rank ascending and scans for five consecutive ranks.
// Duplicate ranks keep a run alive without extending it. A four-card run
// topping out at Five counts as the wheel when the highest card is an Ace.
func findStraight(cards []deck.Card) (deck.Rank, bool) {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b deck.Card) int { return int(a.Rank) - int(b.Rank) })

	for first := 0; first <= len(sorted)-5; first++ {
		run := 1
		var high deck.Rank
		for i := first + 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1].Rank, sorted[i].Rank
			if cur == prev+1 {
				run++
				high = cur
			} else if cur != prev {
				break
			}
		}
		if run >= 5 {
			return high, true
		}
		if run == 4 && high == deck.Five && sorted[len(sorted)-1].Rank == deck.Ace {
			return deck.Five, true
		}
	}
	return 0, false
}

// findStraightFlush restricts the cards to the flush suit, if any, and
// re-runs straight detection on that subset.
func findStraightFlush(cards []deck.Card) (deck.Suit, deck.Rank, bool) {
	suit, _, ok := findFlush(cards)
	if !ok {
		return 0, 0, false
	}
	suited := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		if c.Suit == suit {
			suited = append(suited, c)
		}
	}
	rank, ok := findStraight(suited)
	if !ok {
		return 0, 0, false
	}
	return suit, rank, true
}

func highestRank(cards []deck.Card) deck.Rank {
	var high deck.Rank
	for _, c := range cards {
		if c.Rank > high {
			high = c.Rank
		}
	}
	return high
}
