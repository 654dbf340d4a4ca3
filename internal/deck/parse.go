package deck

import (
	"fmt"
	"strings"
)

// FormatCards renders cards as a space-separated string for logs and
// display.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// ParseCards parses a compact card string such as "AsKhQd" into cards. Each
// card is a rank character followed by a suit character (s, h, d, c). Parsing
// is case insensitive.
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("deck: card string %q has odd length", s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, ok := ParseRank(s[i])
		if !ok {
			return nil, fmt.Errorf("deck: invalid rank %q in %q", s[i], s)
		}
		suit, ok := parseSuit(s[i+1])
		if !ok {
			return nil, fmt.Errorf("deck: invalid suit %q in %q", s[i+1], s)
		}
		cards = append(cards, NewCard(rank, suit))
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on invalid input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}
