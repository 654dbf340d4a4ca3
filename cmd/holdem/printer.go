package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pokercats/holdem/internal/deck"
	"github.com/pokercats/holdem/internal/game"
)

// handPrinter narrates hands to stdout. It doubles as the presentation layer
// acknowledgement: streets are confirmed immediately since there is no
// dealing animation to wait for.
type handPrinter struct {
	table *game.Table
	done  chan struct{}
	once  sync.Once
}

func newHandPrinter(table *game.Table) *handPrinter {
	return &handPrinter{
		table: table,
		done:  make(chan struct{}),
	}
}

func (hp *handPrinter) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.BlindsPostedEvent:
		fmt.Printf("\n--- hand %d ---\n", e.HandNumber)
		fmt.Printf("blinds %d/%d", e.SmallBlind, e.BigBlind)
		if e.Ante > 0 {
			fmt.Printf(" ante %d", e.Ante)
		}
		fmt.Printf(", button seat %d\n", e.ButtonSeat)
	case game.TurnEndedEvent:
		line := fmt.Sprintf("%s %s", e.Player, strings.ToLower(e.Action.String()))
		if e.Amount > 0 {
			line += fmt.Sprintf(" %d", e.Amount)
		}
		fmt.Printf("%s (pot %d)\n", line, e.PotTotal)
	case game.StreetDealtEvent:
		fmt.Printf("%s: %s\n", strings.ToLower(e.Street.String()), deck.FormatCards(e.Board))
		hp.table.ConfirmStreetDealt()
	case game.ShowdownEndedEvent:
		for _, r := range e.Results {
			fmt.Printf("%s shows %s: %s\n", r.Player, r.Hole, r.Description)
		}
	case game.HandEndedEvent:
		for _, p := range e.Payouts {
			fmt.Printf("%s wins %d\n", p.Player.Name, p.Amount)
		}
		if hp.table.HasEnded() {
			hp.once.Do(func() { close(hp.done) })
		}
	}
}
