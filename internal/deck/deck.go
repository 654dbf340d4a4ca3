package deck

import (
	"errors"
	"math/rand/v2"

	"github.com/pokercats/holdem/internal/randutil"
)

// ErrEmptyDeck is returned when a deal or burn is requested and no cards
// remain.
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Deck is a standard 52-card deck. The zero value is not usable; construct
// one with NewDeck and call StartNewHand before dealing.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full deck backed by a crypto-seeded shuffle source.
func NewDeck() *Deck {
	return NewDeckWithSource(randutil.NewCryptoSeeded())
}

// NewDeckWithSource creates a full deck that shuffles with the provided
// source. Tests pass a seeded source for reproducible deals.
func NewDeckWithSource(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.restore()
	return d
}

func (d *Deck) restore() {
	d.cards = d.cards[:0]
	for _, suit := range Suits() {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// StartNewHand restores the deck to all 52 cards face down and shuffles it.
func (d *Deck) StartNewHand() {
	d.restore()
	d.shuffle()
}

// shuffle performs a Fisher-Yates pass over the full deck.
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealTopCard removes and returns the top card.
func (d *Deck) DealTopCard() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// BurnTopCard discards the top card unseen.
func (d *Deck) BurnTopCard() error {
	_, err := d.DealTopCard()
	return err
}

// DealHoleCards burns nothing and returns two cards as an ordered pair.
func (d *Deck) DealHoleCards() (HoleCards, error) {
	a, err := d.DealTopCard()
	if err != nil {
		return HoleCards{}, err
	}
	b, err := d.DealTopCard()
	if err != nil {
		return HoleCards{}, err
	}
	return NewHoleCards(a, b), nil
}

// DealFlop burns one card and returns the next three face up.
func (d *Deck) DealFlop() ([]Card, error) {
	if err := d.BurnTopCard(); err != nil {
		return nil, err
	}
	flop := make([]Card, 0, 3)
	for i := 0; i < 3; i++ {
		card, err := d.DealTopCard()
		if err != nil {
			return nil, err
		}
		card.FaceUp = true
		flop = append(flop, card)
	}
	return flop, nil
}

// DealTurnOrRiver burns one card and returns the next one face up.
func (d *Deck) DealTurnOrRiver() (Card, error) {
	if err := d.BurnTopCard(); err != nil {
		return Card{}, err
	}
	card, err := d.DealTopCard()
	if err != nil {
		return Card{}, err
	}
	card.FaceUp = true
	return card, nil
}

// CardsRemaining returns the number of undealt cards.
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
