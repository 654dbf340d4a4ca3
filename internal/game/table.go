package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/pokercats/holdem/internal/deck"
	"github.com/pokercats/holdem/internal/evaluator"
)

// Config carries the table setup parameters passed once at creation.
type Config struct {
	BigBlind      int
	Ante          int
	StartingStack int
	Seats         int

	TurnTimeout time.Duration // zero means the 30s default
	AIDelay     time.Duration // artificial thinking time before an AI acts
	HandLimit   int           // stop after this many hands, zero means endless
}

const (
	defaultTurnTimeout = 30 * time.Second
	defaultAIDelay     = time.Second
)

// ErrTableStarted is returned when seats are changed after the first deal.
var ErrTableStarted = errors.New("game: table already started")

// ErrNotYourTurn is returned when an action arrives for a seat that is not
// acting.
var ErrNotYourTurn = errors.New("game: not this seat's turn")

// ErrIllegalAction is returned when a submitted action is not in the acting
// seat's legal-action set.
var ErrIllegalAction = errors.New("game: action not legal for acting seat")

// Table is the top-level state machine. It owns the deck, the board, the
// hand sequence, turn-order cycling, street transitions and event
// notifications. All game state is mutated by one action at a time; the
// mutex only serializes external inputs against timer callbacks.
type Table struct {
	mu sync.Mutex

	cfg     Config
	players []*Player
	agents  map[int]Agent

	deck   *deck.Deck
	board  []deck.Card
	hand   *Hand
	street Street

	current     int
	handsPlayed int
	started     bool

	// The state machine pauses after dealing a street until the
	// presentation layer confirms its animation finished.
	awaitingStreet bool

	eval   *evaluator.Evaluator
	bus    EventBus
	logger *log.Logger
	clock  quartz.Clock

	turnSeq   int
	turnTimer *quartz.Timer
	aiTimer   *quartz.Timer

	pending []GameEvent
}

// TableOption customizes a table at construction.
type TableOption func(*Table)

// WithClock injects the clock driving turn timers and AI thinking delays.
// Tests pass a mock clock.
func WithClock(clock quartz.Clock) TableOption {
	return func(t *Table) { t.clock = clock }
}

// WithDeck injects the deck, letting tests use a seeded shuffle source.
func WithDeck(d *deck.Deck) TableOption {
	return func(t *Table) { t.deck = d }
}

// WithEventBus injects the bus that presentation layers subscribe to.
func WithEventBus(bus EventBus) TableOption {
	return func(t *Table) { t.bus = bus }
}

// WithLogger injects the table's logger.
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) { t.logger = logger }
}

// NewTable creates a table from the given setup parameters.
func NewTable(cfg Config, opts ...TableOption) (*Table, error) {
	if cfg.BigBlind <= 0 {
		return nil, fmt.Errorf("game: big blind must be positive, got %d", cfg.BigBlind)
	}
	if cfg.Ante < 0 {
		return nil, fmt.Errorf("game: ante must be non-negative, got %d", cfg.Ante)
	}
	if cfg.Seats < 2 || cfg.Seats > positionCount {
		return nil, fmt.Errorf("game: seats must be between 2 and %d, got %d", positionCount, cfg.Seats)
	}
	if cfg.StartingStack <= 0 {
		return nil, fmt.Errorf("game: starting stack must be positive, got %d", cfg.StartingStack)
	}
	if cfg.TurnTimeout == 0 {
		cfg.TurnTimeout = defaultTurnTimeout
	}
	if cfg.AIDelay == 0 {
		cfg.AIDelay = defaultAIDelay
	}

	t := &Table{
		cfg:    cfg,
		agents: make(map[int]Agent),
		logger: log.Default().WithPrefix("table"),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.bus == nil {
		t.bus = NewEventBus()
	}
	if t.deck == nil {
		t.deck = deck.NewDeck()
	}
	t.eval = evaluator.New(t.logger)
	return t, nil
}

// AddPlayer seats a player. AI seats need an agent; human seats act through
// SubmitAction and may pass a nil agent.
func (t *Table) AddPlayer(name string, kind PlayerKind, agent Agent) (*Player, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil, ErrTableStarted
	}
	if len(t.players) >= t.cfg.Seats {
		return nil, fmt.Errorf("game: table is full (%d seats)", t.cfg.Seats)
	}
	if kind == AI && agent == nil {
		return nil, errors.New("game: AI seat needs an agent")
	}

	p := NewPlayer(name, len(t.players), t.cfg.StartingStack, kind)
	t.players = append(t.players, p)
	if agent != nil {
		t.agents[p.Seat] = agent
	}
	return p, nil
}

// Start assigns initial positions and deals the first hand.
func (t *Table) Start() error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return ErrTableStarted
	}
	if len(t.players) < 2 {
		t.mu.Unlock()
		return errors.New("game: need at least two players to start")
	}
	t.started = true

	position := FirstPosition(len(t.players))
	for _, p := range t.players {
		p.Position = position
		position++
	}

	err := t.startHand()
	events := t.takePending()
	t.mu.Unlock()

	t.publish(events)
	return err
}

// startHand opens a new hand: shuffle, rotate positions, post blinds, deal
// hole cards and hand the turn to the first seat after the big blind.
func (t *Table) startHand() error {
	t.deck.StartNewHand()
	t.board = nil
	t.street = Preflop
	t.awaitingStreet = false

	if t.handsPlayed > 0 {
		for _, p := range t.players {
			p.Position = NextHandPosition(p.Position, len(t.players))
		}
	}

	hand, err := NewHand(t.players, t.cfg.BigBlind, t.cfg.Ante, t.logger)
	if err != nil {
		return err
	}
	t.hand = hand
	t.hand.PostBlindsAndAntes()

	button, ok := t.buttonSeat()
	if !ok {
		return errors.New("game: no button or small blind seat found")
	}
	t.queue(BlindsPostedEvent{
		HandNumber: t.handsPlayed + 1,
		SmallBlind: t.cfg.BigBlind / 2,
		BigBlind:   t.cfg.BigBlind,
		Ante:       t.cfg.Ante,
		ButtonSeat: button,
		timestamp:  time.Now(),
	})

	if err := t.dealHoleCards(); err != nil {
		return err
	}
	t.queue(HoleCardsDealtEvent{HandNumber: t.handsPlayed + 1, timestamp: time.Now()})

	t.setFirstToAct()
	t.beginTurn()
	return nil
}

// dealHoleCards deals two cards to every seat, starting from the small
// blind and proceeding in seat order.
func (t *Table) dealHoleCards() error {
	start, ok := t.seatAtPosition(SB)
	if !ok {
		t.logger.Error("no small blind seat, dealing from seat zero")
		start = 0
	}
	for i := 0; i < len(t.players); i++ {
		p := t.players[(start+i)%len(t.players)]
		hole, err := t.deck.DealHoleCards()
		if err != nil {
			return err
		}
		p.GiveHoleCards(hole)
	}
	return nil
}

// buttonSeat returns the seat holding the button. Heads-up tables have no BU
// position; the small blind holds the button instead.
func (t *Table) buttonSeat() (int, bool) {
	if seat, ok := t.seatAtPosition(BU); ok {
		return seat, true
	}
	if seat, ok := t.seatAtPosition(SB); ok {
		return seat, true
	}
	t.logger.Error("no seat found at button or small blind position")
	return -1, false
}

func (t *Table) seatAtPosition(pos Position) (int, bool) {
	for _, p := range t.players {
		if p.Position == pos {
			return p.Seat, true
		}
	}
	return -1, false
}

// setFirstToAct points the turn index at the first involved seat after the
// big blind preflop, or after the button on later streets.
func (t *Table) setFirstToAct() {
	var anchor int
	if t.street == Preflop {
		seat, ok := t.seatAtPosition(BB)
		if !ok {
			t.logger.Error("no big blind seat found, starting from seat zero")
			seat = -1
		}
		anchor = seat
	} else {
		seat, ok := t.buttonSeat()
		if !ok {
			seat = -1
		}
		anchor = seat
	}

	idx := (anchor + 1) % len(t.players)
	for i := 0; i < len(t.players); i++ {
		p := t.players[idx]
		if t.hand.IsInvolved(p) && !p.IsAllIn() {
			t.current = idx
			return
		}
		idx = (idx + 1) % len(t.players)
	}
	t.logger.Error("no involved seat found for first to act")
	t.current = (anchor + 1) % len(t.players)
}

// advanceTurn moves the turn index to the next seat, skipping folded and
// all-in players.
func (t *Table) advanceTurn() {
	for i := 0; i < len(t.players); i++ {
		t.current = (t.current + 1) % len(t.players)
		p := t.players[t.current]
		if t.hand.IsInvolved(p) && !p.IsAllIn() {
			return
		}
	}
	t.logger.Error("no eligible seat found while advancing turn")
}

// CurrentSeat returns the seat index whose turn it is.
func (t *Table) CurrentSeat() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// CurrentPlayer returns the acting player.
func (t *Table) CurrentPlayer() *Player {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.players[t.current]
}

// Players returns the seated players in seat order.
func (t *Table) Players() []*Player {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.players
}

// Board returns the community cards dealt so far.
func (t *Table) Board() []deck.Card {
	t.mu.Lock()
	defer t.mu.Unlock()
	board := make([]deck.Card, len(t.board))
	copy(board, t.board)
	return board
}

// Street returns the current street.
func (t *Table) Street() Street {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.street
}

// PotTotal returns the chips in the ledger for the current hand.
func (t *Table) PotTotal() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.hand == nil {
		return 0
	}
	return t.hand.PotTotal()
}

// HandsPlayed returns the number of completed hands.
func (t *Table) HandsPlayed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handsPlayed
}

// HasEnded reports whether the table should stop dealing. Only the
// hand-limit condition is implemented; a ring game runs until stopped.
func (t *Table) HasEnded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasEnded()
}

func (t *Table) hasEnded() bool {
	return t.cfg.HandLimit > 0 && t.handsPlayed >= t.cfg.HandLimit
}

// HandHint describes a seat's current holding: hole cards only before the
// flop is on the board, best five-card hand after.
func (t *Table) HandHint(seat int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seat < 0 || seat >= len(t.players) {
		return ""
	}
	p := t.players[seat]
	if !p.HasCards {
		return ""
	}
	info, err := t.eval.Evaluate(p.Hole, t.board)
	if err != nil {
		t.logger.Error("could not evaluate hand for hint", "seat", seat, "err", err)
		return ""
	}
	return evaluator.Describe(info)
}

// queue stages an event; publication happens after the lock is released so
// subscribers can call back into the table.
func (t *Table) queue(event GameEvent) {
	t.pending = append(t.pending, event)
}

func (t *Table) takePending() []GameEvent {
	events := t.pending
	t.pending = nil
	return events
}

func (t *Table) publish(events []GameEvent) {
	for _, event := range events {
		t.bus.Publish(event)
	}
}
