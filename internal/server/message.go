package server

import (
	"encoding/json"
	"time"

	"github.com/pokercats/holdem/internal/game"
)

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Server → client.
	MessageTypeWelcome      MessageType = "welcome"
	MessageTypeSeatAssigned MessageType = "seat_assigned"
	MessageTypeGameEvent    MessageType = "game_event"
	MessageTypeActionNeeded MessageType = "action_needed"
	MessageTypeError        MessageType = "error"

	// Client → server.
	MessageTypeTakeSeat      MessageType = "take_seat"
	MessageTypeAction        MessageType = "action"
	MessageTypeConfirmStreet MessageType = "confirm_street"
)

// Message is the WebSocket envelope.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps a payload in an envelope with the current timestamp.
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// WelcomeData greets a new connection with the table parameters.
type WelcomeData struct {
	Seats    int `json:"seats"`
	BigBlind int `json:"bigBlind"`
}

// TakeSeatData claims a human seat for the connection.
type TakeSeatData struct {
	Name string `json:"name"`
}

// SeatAssignedData confirms a claimed seat.
type SeatAssignedData struct {
	Seat  int    `json:"seat"`
	Name  string `json:"name"`
	Chips int    `json:"chips"`
}

// GameEventData relays one table event. Detail is the event struct itself,
// serialized with its exported fields.
type GameEventData struct {
	Event  game.EventType `json:"event"`
	Detail any            `json:"detail"`
}

// ActionOption is one legal action offered to the acting seat.
type ActionOption struct {
	Action    string `json:"action"`
	MinAmount int    `json:"minAmount,omitempty"`
	MaxAmount int    `json:"maxAmount,omitempty"`
}

// ActionNeededData prompts a seated client for a decision.
type ActionNeededData struct {
	Seat    int            `json:"seat"`
	Actions []ActionOption `json:"actions"`
}

// ActionData submits a decision for a seat.
type ActionData struct {
	Seat   int    `json:"seat"`
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// ErrorData reports a rejected request.
type ErrorData struct {
	Message string `json:"message"`
}
