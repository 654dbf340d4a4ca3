package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/pokercats/holdem/internal/deck"
	"github.com/pokercats/holdem/internal/evaluator"
)

// LegalActions returns the action set available to the acting seat.
// Checking requires no chips owed. With no live bet the seat may open with a
// bet (postflop; preflop the big blind is already a live bet, so the big
// blind's option surfaces as a raise). Facing a bet the seat may call or,
// with chips beyond the call, raise to at least double the highest bet.
func (t *Table) LegalActions() []ValidAction {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.legalActions(t.players[t.current])
}

func (t *Table) legalActions(p *Player) []ValidAction {
	actions := []ValidAction{{Action: Fold}}

	highest := t.hand.HighestBet()
	uncalled := highest - p.StreetBet

	if uncalled <= 0 {
		actions = append(actions, ValidAction{Action: Check})
		if highest == 0 && p.Chips() > 0 {
			actions = append(actions, ValidAction{
				Action:    Bet,
				MinAmount: min(t.cfg.BigBlind, p.Chips()),
				MaxAmount: p.Chips(),
			})
		}
		if highest > 0 && p.Chips() > 0 {
			actions = append(actions, ValidAction{
				Action:    Raise,
				MinAmount: min(2*highest-p.StreetBet, p.Chips()),
				MaxAmount: p.Chips(),
			})
		}
		return actions
	}

	call := min(uncalled, p.Chips())
	actions = append(actions, ValidAction{Action: Call, MinAmount: call, MaxAmount: call})
	if p.Chips() > uncalled {
		actions = append(actions, ValidAction{
			Action:    Raise,
			MinAmount: min(2*highest-p.StreetBet, p.Chips()),
			MaxAmount: p.Chips(),
		})
	}
	return actions
}

// SubmitAction applies an action from an external input (CLI, network) for
// the given seat. Amount is the chip contribution for Bet and Raise and is
// ignored for the other actions.
func (t *Table) SubmitAction(seat int, action Action, amount int) error {
	t.mu.Lock()
	err := t.submitAction(seat, action, amount)
	events := t.takePending()
	t.mu.Unlock()

	t.publish(events)
	return err
}

func (t *Table) submitAction(seat int, action Action, amount int) error {
	if t.hand == nil || t.awaitingStreet {
		return ErrNotYourTurn
	}
	if seat != t.current {
		return fmt.Errorf("%w: seat %d acted, seat %d to act", ErrNotYourTurn, seat, t.current)
	}

	p := t.players[t.current]
	legal := t.legalActions(p)
	idx := slices.IndexFunc(legal, func(va ValidAction) bool { return va.Action == action })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrIllegalAction, action)
	}
	if action == Bet || action == Raise {
		if amount < legal[idx].MinAmount || amount > legal[idx].MaxAmount {
			return fmt.Errorf("%w: %s of %d outside [%d, %d]",
				ErrIllegalAction, action, amount, legal[idx].MinAmount, legal[idx].MaxAmount)
		}
	}

	t.applyAction(p, action, amount, "")
	return nil
}

// applyAction mutates the hand for one decided action, then advances the
// state machine: next turn, next street, or hand end.
func (t *Table) applyAction(p *Player, action Action, amount int, reasoning string) {
	t.cancelTimers()

	contributed := 0
	switch action {
	case Fold:
		t.hand.RemovePlayer(p)
	case Check:
		// nothing owed, nothing moves
	case Call:
		contributed = t.hand.PutChipsToPot(p, t.hand.HighestBet()-p.StreetBet)
	case Bet, Raise:
		contributed = t.hand.PutChipsToPot(p, amount)
	}
	p.LastAction = action

	t.logger.Info("turn ended",
		"player", p.Name, "position", p.Position, "action", action, "amount", contributed)
	t.queue(TurnEndedEvent{
		Seat:      p.Seat,
		Player:    p.Name,
		Action:    action,
		Amount:    contributed,
		PotTotal:  t.hand.PotTotal(),
		Reasoning: reasoning,
		timestamp: time.Now(),
	})

	switch {
	case t.hand.HasOnePlayerLeft():
		t.endHand()
	case t.needToDealNextStreet():
		t.dealNextStreet()
	default:
		t.advanceTurn()
		t.beginTurn()
	}
}

// needToDealNextStreet reports whether the betting round is closed: every
// live bet is matched and either everyone still in has acted or at most one
// player is not all-in.
func (t *Table) needToDealNextStreet() bool {
	highest := t.hand.HighestBet()
	allActed := true
	notAllIn := 0
	for _, p := range t.hand.Involved() {
		if p.IsAllIn() {
			continue
		}
		notAllIn++
		if p.StreetBet < highest {
			return false
		}
		if !p.HasActed() {
			allActed = false
		}
	}
	return allActed || notAllIn <= 1
}

// dealNextStreet closes the current street and puts the next community cards
// on the board, pausing for the presentation layer's confirmation. After the
// river it runs the showdown instead.
func (t *Table) dealNextStreet() {
	t.hand.ReconcileSidePots()
	t.hand.ResetStreet()

	var (
		cards []deck.Card
		err   error
	)
	switch t.street {
	case Preflop:
		cards, err = t.deck.DealFlop()
		t.street = Flop
	case Flop:
		var card deck.Card
		card, err = t.deck.DealTurnOrRiver()
		cards = []deck.Card{card}
		t.street = Turn
	case Turn:
		var card deck.Card
		card, err = t.deck.DealTurnOrRiver()
		cards = []deck.Card{card}
		t.street = River
	case River:
		t.beginShowdown()
		return
	default:
		t.logger.Error("street deal requested on street", "street", t.street)
		return
	}
	if err != nil {
		t.logger.Error("could not deal street", "street", t.street, "err", err)
		return
	}

	t.board = append(t.board, cards...)
	t.awaitingStreet = true
	t.logger.Info("street dealt", "street", t.street, "board", deck.FormatCards(t.board))
	t.queue(StreetDealtEvent{
		Street:    t.street,
		Cards:     cards,
		Board:     slices.Clone(t.board),
		timestamp: time.Now(),
	})
}

// ConfirmStreetDealt resumes play after a street deal. The presentation
// layer calls it once its dealing animation has finished; until then no turn
// is open and no further cards come out.
func (t *Table) ConfirmStreetDealt() {
	t.mu.Lock()
	if !t.awaitingStreet {
		t.logger.Debug("street confirmation with no street pending")
		t.mu.Unlock()
		return
	}
	t.awaitingStreet = false

	t.updateHandInfos()
	if t.needToDealNextStreet() {
		// Everyone is all-in, run the board out.
		t.dealNextStreet()
	} else {
		t.setFirstToAct()
		t.beginTurn()
	}

	events := t.takePending()
	t.mu.Unlock()
	t.publish(events)
}

// updateHandInfos re-evaluates every live hand against the board.
func (t *Table) updateHandInfos() {
	for _, p := range t.hand.Involved() {
		info, err := t.eval.Evaluate(p.Hole, t.board)
		if err != nil {
			t.logger.Error("could not evaluate hand", "player", p.Name, "err", err)
			continue
		}
		t.hand.SetHandInfo(p, info)
	}
}

// beginShowdown reveals the live hands and settles the pots.
func (t *Table) beginShowdown() {
	t.street = Showdown

	var results []ShowdownResult
	for _, p := range t.players {
		if !t.hand.IsInvolved(p) {
			continue
		}
		if p.Kind != Human {
			p.Hole.First.FaceUp = true
			p.Hole.Second.FaceUp = true
		}
		results = append(results, ShowdownResult{
			Seat:        p.Seat,
			Player:      p.Name,
			Hole:        p.Hole,
			Description: evaluator.Describe(t.hand.HandInfoFor(p)),
		})
	}
	t.queue(ShowdownEndedEvent{Results: results, timestamp: time.Now()})
	t.endHand()
}

// endHand pays out the pots, clears per-hand state and deals the next hand
// unless the table is done.
func (t *Table) endHand() {
	t.cancelTimers()

	payouts := t.hand.PayOutPots()
	t.handsPlayed++
	for _, payout := range payouts {
		t.logger.Info("pot paid",
			"player", payout.Player.Name, "amount", payout.Amount, "pot", payout.PotIndex)
	}
	t.queue(HandEndedEvent{HandNumber: t.handsPlayed, Payouts: payouts, timestamp: time.Now()})

	for _, p := range t.players {
		p.StreetBet = 0
		p.TotalBet = 0
		p.LastAction = NoAction
		p.ClearHoleCards()
	}
	t.board = nil
	t.hand = nil

	if t.hasEnded() {
		t.logger.Info("hand limit reached", "hands", t.handsPlayed)
		return
	}
	funded := 0
	for _, p := range t.players {
		if p.Chips() > 0 {
			funded++
		}
	}
	if funded < 2 {
		t.logger.Info("not enough funded players to continue", "hands", t.handsPlayed)
		return
	}
	if err := t.startHand(); err != nil {
		t.logger.Error("could not start next hand", "err", err)
	}
}

// beginTurn opens the acting seat's turn. AI seats decide after a short
// thinking delay; human seats get the turn timeout. The sequence number
// voids callbacks from turns that already resolved.
func (t *Table) beginTurn() {
	t.cancelTimers()
	t.turnSeq++
	seq := t.turnSeq

	p := t.players[t.current]
	t.logger.Debug("turn started", "player", p.Name, "position", p.Position)
	t.queue(TurnStartedEvent{
		Seat:         p.Seat,
		Player:       p.Name,
		Kind:         p.Kind,
		ValidActions: t.legalActions(p),
		timestamp:    time.Now(),
	})
	if p.Kind == AI {
		t.aiTimer = t.clock.AfterFunc(t.cfg.AIDelay, func() {
			t.makeAITurn(seq)
		})
		return
	}
	t.turnTimer = t.clock.AfterFunc(t.cfg.TurnTimeout, func() {
		t.timeoutTurn(seq)
	})
}

func (t *Table) cancelTimers() {
	if t.aiTimer != nil {
		t.aiTimer.Stop()
		t.aiTimer = nil
	}
	if t.turnTimer != nil {
		t.turnTimer.Stop()
		t.turnTimer = nil
	}
}

// makeAITurn asks the seat's agent for a decision and applies it. A
// decision outside the legal set is downgraded to check or fold.
func (t *Table) makeAITurn(seq int) {
	t.mu.Lock()
	if seq != t.turnSeq || t.hand == nil {
		t.mu.Unlock()
		return
	}

	p := t.players[t.current]
	agent, ok := t.agents[p.Seat]
	if !ok {
		t.logger.Error("AI seat has no agent, folding", "seat", p.Seat)
		t.applyAction(p, Fold, 0, "")
		events := t.takePending()
		t.mu.Unlock()
		t.publish(events)
		return
	}

	legal := t.legalActions(p)
	decision := agent.MakeDecision(t.buildTableState(p), slices.Clone(legal))

	idx := slices.IndexFunc(legal, func(va ValidAction) bool { return va.Action == decision.Action })
	if idx < 0 {
		t.logger.Warn("agent chose an illegal action, using default",
			"player", p.Name, "action", decision.Action)
		decision = Decision{Action: t.defaultAction(legal)}
	} else if decision.Action == Bet || decision.Action == Raise {
		if decision.Amount < legal[idx].MinAmount {
			decision.Amount = legal[idx].MinAmount
		}
		if decision.Amount > legal[idx].MaxAmount {
			decision.Amount = legal[idx].MaxAmount
		}
	}

	t.applyAction(p, decision.Action, decision.Amount, decision.Reasoning)
	events := t.takePending()
	t.mu.Unlock()
	t.publish(events)
}

// timeoutTurn applies the default action when a seat lets its turn clock run
// out: check when nothing is owed, fold otherwise.
func (t *Table) timeoutTurn(seq int) {
	t.mu.Lock()
	if seq != t.turnSeq || t.hand == nil {
		t.mu.Unlock()
		return
	}

	p := t.players[t.current]
	action := t.defaultAction(t.legalActions(p))
	t.logger.Warn("turn timed out", "player", p.Name, "action", action)
	t.applyAction(p, action, 0, "")
	events := t.takePending()
	t.mu.Unlock()
	t.publish(events)
}

func (t *Table) defaultAction(legal []ValidAction) Action {
	for _, va := range legal {
		if va.Action == Check {
			return Check
		}
	}
	return Fold
}

// buildTableState snapshots what the acting seat may know.
func (t *Table) buildTableState(p *Player) TableState {
	aggressor, hasAggressor := t.hand.HighestBetPosition()
	return TableState{
		Street:            t.street,
		BigBlind:          t.cfg.BigBlind,
		PotTotal:          t.hand.PotTotal(),
		HighestBet:        t.hand.HighestBet(),
		AggressorPosition: aggressor,
		HasAggressor:      hasAggressor,
		Board:             slices.Clone(t.board),
		Position:          p.Position,
		Hole:              p.Hole,
		StreetBet:         p.StreetBet,
		Chips:             p.Chips(),
	}
}
