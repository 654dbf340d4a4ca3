package deck

import (
	"errors"
	"testing"

	"github.com/pokercats/holdem/internal/randutil"
)

func TestStartNewHandIsPermutation(t *testing.T) {
	d := NewDeckWithSource(randutil.NewSeeded(7))
	d.StartNewHand()

	if got := d.CardsRemaining(); got != 52 {
		t.Fatalf("CardsRemaining() = %d, want 52", got)
	}

	seen := make(map[Card]bool, 52)
	for i := 0; i < 52; i++ {
		card, err := d.DealTopCard()
		if err != nil {
			t.Fatalf("DealTopCard() at %d: %v", i, err)
		}
		key := Card{Rank: card.Rank, Suit: card.Suit}
		if seen[key] {
			t.Fatalf("duplicate card %s in shuffled deck", card)
		}
		seen[key] = true
	}
	if len(seen) != 52 {
		t.Fatalf("shuffled deck contained %d distinct cards, want 52", len(seen))
	}
}

func TestSeededShufflesAreReproducible(t *testing.T) {
	a := NewDeckWithSource(randutil.NewSeeded(99))
	b := NewDeckWithSource(randutil.NewSeeded(99))
	a.StartNewHand()
	b.StartNewHand()
	for i := 0; i < 52; i++ {
		ca, _ := a.DealTopCard()
		cb, _ := b.DealTopCard()
		if !ca.Equal(cb) {
			t.Fatalf("seeded decks diverged at card %d: %s != %s", i, ca, cb)
		}
	}
}

func TestDealFromEmptyDeck(t *testing.T) {
	d := NewDeckWithSource(randutil.NewSeeded(1))
	for i := 0; i < 52; i++ {
		if _, err := d.DealTopCard(); err != nil {
			t.Fatalf("unexpected error at card %d: %v", i, err)
		}
	}
	if _, err := d.DealTopCard(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("DealTopCard() on empty deck = %v, want ErrEmptyDeck", err)
	}
	if err := d.BurnTopCard(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("BurnTopCard() on empty deck = %v, want ErrEmptyDeck", err)
	}
}

func TestStreetDealsBurnAndFace(t *testing.T) {
	d := NewDeckWithSource(randutil.NewSeeded(3))
	d.StartNewHand()

	flop, err := d.DealFlop()
	if err != nil {
		t.Fatalf("DealFlop(): %v", err)
	}
	if len(flop) != 3 {
		t.Fatalf("DealFlop() returned %d cards, want 3", len(flop))
	}
	for _, c := range flop {
		if !c.FaceUp {
			t.Errorf("flop card %s dealt face down", c)
		}
	}
	if got := d.CardsRemaining(); got != 52-4 {
		t.Errorf("after flop CardsRemaining() = %d, want %d (burn + 3)", got, 52-4)
	}

	turn, err := d.DealTurnOrRiver()
	if err != nil {
		t.Fatalf("DealTurnOrRiver(): %v", err)
	}
	if !turn.FaceUp {
		t.Errorf("turn card %s dealt face down", turn)
	}
	if got := d.CardsRemaining(); got != 52-6 {
		t.Errorf("after turn CardsRemaining() = %d, want %d", got, 52-6)
	}
}

func TestDealHoleCardsFaceDown(t *testing.T) {
	d := NewDeckWithSource(randutil.NewSeeded(5))
	d.StartNewHand()
	h, err := d.DealHoleCards()
	if err != nil {
		t.Fatalf("DealHoleCards(): %v", err)
	}
	if h.First.FaceUp || h.Second.FaceUp {
		t.Errorf("hole cards dealt face up: %v", h)
	}
	if h.Second.Rank > h.First.Rank {
		t.Errorf("hole cards not ordered: %v", h)
	}
}
