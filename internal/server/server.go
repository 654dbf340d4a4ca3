// Package server bridges a table to remote presentation layers over
// WebSocket: it streams game events out and feeds submitted actions and
// street confirmations back into the table.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/pokercats/holdem/internal/game"
)

// Server exposes one table over WebSocket.
type Server struct {
	addr     string
	table    *game.Table
	cfg      game.Config
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu    sync.Mutex
	conns map[*Connection]struct{}

	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a server around a table. Register it on the table's
// event bus before starting the table.
func NewServer(addr string, table *game.Table, cfg game.Config, logger *log.Logger) *Server {
	return &Server{
		addr:  addr,
		table: table,
		cfg:   cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
		conns:  make(map[*Connection]struct{}),
	}
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", s.addr, err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	s.httpServer = &http.Server{Handler: mux}

	s.logger.Info("listening", "addr", listener.Addr().String())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.closeAll()
		return s.httpServer.Close()
	})
	return g.Wait()
}

// Addr returns the bound listen address once Run has started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "err", err)
		return
	}

	client := newConnection(conn, s.logger)
	s.mu.Lock()
	s.conns[client] = struct{}{}
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("client connected", "total", total)

	welcome, err := NewMessage(MessageTypeWelcome, WelcomeData{
		Seats:    s.cfg.Seats,
		BigBlind: s.cfg.BigBlind,
	})
	if err == nil {
		_ = client.Send(welcome)
	}

	go client.writePump()
	go func() {
		client.readPump(s.handleMessage)
		s.mu.Lock()
		delete(s.conns, client)
		total := len(s.conns)
		s.mu.Unlock()
		s.logger.Info("client disconnected", "total", total)
	}()
}

// OnEvent implements game.EventSubscriber: every table event is relayed to
// every client. With no clients connected the server confirms street deals
// itself so AI-only tables keep moving.
func (s *Server) OnEvent(event game.GameEvent) {
	msg, err := NewMessage(MessageTypeGameEvent, GameEventData{
		Event:  event.EventType(),
		Detail: event,
	})
	if err != nil {
		s.logger.Error("could not encode event", "event", event.EventType(), "err", err)
		return
	}
	connected := s.broadcast(msg)

	switch e := event.(type) {
	case game.StreetDealtEvent:
		if connected == 0 {
			s.table.ConfirmStreetDealt()
		}
	case game.TurnStartedEvent:
		if e.Kind == game.Human {
			s.promptSeat(e)
		}
	}
}

func (s *Server) broadcast(msg *Message) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Send(msg)
	}
	return len(s.conns)
}

// promptSeat asks the connection holding the acting human seat for a
// decision. An unclaimed seat gets no prompt; the turn timer will fold it.
func (s *Server) promptSeat(event game.TurnStartedEvent) {
	options := make([]ActionOption, len(event.ValidActions))
	for i, va := range event.ValidActions {
		options[i] = ActionOption{
			Action:    va.Action.String(),
			MinAmount: va.MinAmount,
			MaxAmount: va.MaxAmount,
		}
	}
	msg, err := NewMessage(MessageTypeActionNeeded, ActionNeededData{
		Seat:    event.Seat,
		Actions: options,
	})
	if err != nil {
		s.logger.Error("could not encode action prompt", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if conn.Seat() == event.Seat {
			_ = conn.Send(msg)
			return
		}
	}
	s.logger.Debug("no connection holds the acting seat", "seat", event.Seat)
}

func (s *Server) handleMessage(conn *Connection, msg *Message) {
	switch msg.Type {
	case MessageTypeTakeSeat:
		var data TakeSeatData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			s.sendError(conn, "malformed take_seat payload")
			return
		}
		s.takeSeat(conn, data.Name)

	case MessageTypeAction:
		var data ActionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			s.sendError(conn, "malformed action payload")
			return
		}
		action, err := game.ParseAction(data.Action)
		if err != nil {
			s.sendError(conn, err.Error())
			return
		}
		if conn.Seat() != data.Seat {
			s.sendError(conn, "connection does not hold that seat")
			return
		}
		if err := s.table.SubmitAction(data.Seat, action, data.Amount); err != nil {
			s.sendError(conn, err.Error())
		}

	case MessageTypeConfirmStreet:
		s.table.ConfirmStreetDealt()

	default:
		s.sendError(conn, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

// takeSeat binds the connection to the human seat whose player name matches,
// or to the first unclaimed human seat when no name is given.
func (s *Server) takeSeat(conn *Connection, name string) {
	s.mu.Lock()
	claimed := make(map[int]bool)
	for c := range s.conns {
		if seat := c.Seat(); seat >= 0 {
			claimed[seat] = true
		}
	}
	s.mu.Unlock()

	for _, p := range s.table.Players() {
		if p.Kind != game.Human || claimed[p.Seat] {
			continue
		}
		if name != "" && p.Name != name {
			continue
		}
		conn.setSeat(p.Seat)
		msg, err := NewMessage(MessageTypeSeatAssigned, SeatAssignedData{
			Seat:  p.Seat,
			Name:  p.Name,
			Chips: p.Chips(),
		})
		if err == nil {
			_ = conn.Send(msg)
		}
		s.logger.Info("seat claimed", "seat", p.Seat, "player", p.Name)
		return
	}
	s.sendError(conn, "no matching human seat available")
}

func (s *Server) sendError(conn *Connection, message string) {
	msg, err := NewMessage(MessageTypeError, ErrorData{Message: message})
	if err != nil {
		return
	}
	_ = conn.Send(msg)
}
