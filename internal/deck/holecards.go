package deck

// HoleCards is a player's two private cards, kept with the higher rank first
// so that range notation and pair checks never depend on deal order.
type HoleCards struct {
	First  Card
	Second Card
}

// NewHoleCards orders the two cards higher rank first and returns the pair.
func NewHoleCards(a, b Card) HoleCards {
	if b.Rank > a.Rank {
		a, b = b, a
	}
	return HoleCards{First: a, Second: b}
}

// IsPocketPair reports whether both cards share a rank.
func (h HoleCards) IsPocketPair() bool {
	return h.First.Rank == h.Second.Rank
}

// IsSuited reports whether both cards share a suit.
func (h HoleCards) IsSuited() bool {
	return h.First.Suit == h.Second.Suit
}

// Cards returns the pair as a slice, higher rank first.
func (h HoleCards) Cards() []Card {
	return []Card{h.First, h.Second}
}

// Notation returns the range-chart name of the holding: pairs as "QQ",
// non-pairs as the two ranks followed by 's' for suited or 'o' for offsuit,
// e.g. "AKs", "T9o".
func (h HoleCards) Notation() string {
	if h.IsPocketPair() {
		return h.First.Rank.String() + h.Second.Rank.String()
	}
	suffix := "o"
	if h.IsSuited() {
		suffix = "s"
	}
	return h.First.Rank.String() + h.Second.Rank.String() + suffix
}

// String returns the concrete cards, e.g. "A♠K♦".
func (h HoleCards) String() string {
	return h.First.String() + h.Second.String()
}
