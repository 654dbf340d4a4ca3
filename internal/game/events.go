package game

import (
	"time"

	"github.com/pokercats/holdem/internal/deck"
)

// EventType identifies a game event.
type EventType string

const (
	EventTypeBlindsPosted   EventType = "blinds_posted"
	EventTypeHoleCardsDealt EventType = "hole_cards_dealt"
	EventTypeTurnStarted    EventType = "turn_started"
	EventTypeTurnEnded      EventType = "turn_ended"
	EventTypeStreetDealt    EventType = "street_dealt"
	EventTypeShowdownEnded  EventType = "showdown_ended"
	EventTypeHandEnded      EventType = "hand_ended"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is any notification the orchestrator publishes to the
// presentation layer. Each occurrence is published at most once.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// BlindsPostedEvent fires after the forced bets of a new hand are in.
type BlindsPostedEvent struct {
	HandNumber int
	SmallBlind int
	BigBlind   int
	Ante       int
	ButtonSeat int
	timestamp  time.Time
}

func (e BlindsPostedEvent) EventType() EventType { return EventTypeBlindsPosted }
func (e BlindsPostedEvent) Timestamp() time.Time { return e.timestamp }

// HoleCardsDealtEvent fires once every seat has its two cards.
type HoleCardsDealtEvent struct {
	HandNumber int
	timestamp  time.Time
}

func (e HoleCardsDealtEvent) EventType() EventType { return EventTypeHoleCardsDealt }
func (e HoleCardsDealtEvent) Timestamp() time.Time { return e.timestamp }

// TurnStartedEvent fires when a seat's turn opens. For human seats the
// presentation layer should prompt using the listed valid actions.
type TurnStartedEvent struct {
	Seat         int
	Player       string
	Kind         PlayerKind
	ValidActions []ValidAction
	timestamp    time.Time
}

func (e TurnStartedEvent) EventType() EventType { return EventTypeTurnStarted }
func (e TurnStartedEvent) Timestamp() time.Time { return e.timestamp }

// TurnEndedEvent fires when a seat's action has been applied.
type TurnEndedEvent struct {
	Seat      int
	Player    string
	Action    Action
	Amount    int
	PotTotal  int
	Reasoning string
	timestamp time.Time
}

func (e TurnEndedEvent) EventType() EventType { return EventTypeTurnEnded }
func (e TurnEndedEvent) Timestamp() time.Time { return e.timestamp }

// StreetDealtEvent fires when community cards hit the board. Board holds the
// full board so far. The presentation layer must answer with
// ConfirmStreetDealt once its dealing animation is done.
type StreetDealtEvent struct {
	Street    Street
	Cards     []deck.Card
	Board     []deck.Card
	timestamp time.Time
}

func (e StreetDealtEvent) EventType() EventType { return EventTypeStreetDealt }
func (e StreetDealtEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownResult is one revealed hand at showdown.
type ShowdownResult struct {
	Seat        int
	Player      string
	Hole        deck.HoleCards
	Description string
}

// ShowdownEndedEvent fires after every live non-human hand is revealed.
type ShowdownEndedEvent struct {
	Results   []ShowdownResult
	timestamp time.Time
}

func (e ShowdownEndedEvent) EventType() EventType { return EventTypeShowdownEnded }
func (e ShowdownEndedEvent) Timestamp() time.Time { return e.timestamp }

// HandEndedEvent fires after pots are paid.
type HandEndedEvent struct {
	HandNumber int
	Payouts    []Payout
	timestamp  time.Time
}

func (e HandEndedEvent) EventType() EventType { return EventTypeHandEnded }
func (e HandEndedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives published game events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates an empty bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish delivers an event to every subscriber in order.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
