package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokercats/holdem/internal/game"
)

func startTestServer(t *testing.T) (*Server, *game.Table, string) {
	t.Helper()

	cfg := game.Config{BigBlind: 20, StartingStack: 1000, Seats: 3}
	bus := game.NewEventBus()
	table, err := game.NewTable(cfg, game.WithEventBus(bus), game.WithLogger(log.New(io.Discard)))
	require.NoError(t, err)
	_, err = table.AddPlayer("alice", game.Human, nil)
	require.NoError(t, err)
	_, err = table.AddPlayer("bob", game.Human, nil)
	require.NoError(t, err)

	srv := NewServer("127.0.0.1:0", table, cfg, log.New(io.Discard))
	bus.Subscribe(srv)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		if err := srv.Run(ctx); err != nil {
			t.Logf("server stopped: %v", err)
		}
	}()

	addr := waitForServer(t, srv)
	return srv, table, addr
}

func waitForServer(t *testing.T, srv *Server) string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		addr := srv.Addr()
		if _, _, err := net.SplitHostPort(addr); err == nil && addr != "127.0.0.1:0" {
			resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return addr
				}
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("server did not become ready")
	return ""
}

func dial(t *testing.T, addr string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(fmt.Sprintf("ws://%s/ws", addr), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) *Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return &msg
}

func send(t *testing.T, conn *websocket.Conn, messageType MessageType, data any) {
	t.Helper()
	msg, err := NewMessage(messageType, data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))
}

func TestServerWelcomesClients(t *testing.T) {
	_, _, addr := startTestServer(t)
	conn := dial(t, addr)

	msg := readMessage(t, conn)
	require.Equal(t, MessageTypeWelcome, msg.Type)

	var welcome WelcomeData
	require.NoError(t, json.Unmarshal(msg.Data, &welcome))
	assert.Equal(t, 3, welcome.Seats)
	assert.Equal(t, 20, welcome.BigBlind)
}

func TestTakeSeat(t *testing.T) {
	_, _, addr := startTestServer(t)

	t.Run("by name", func(t *testing.T) {
		conn := dial(t, addr)
		readMessage(t, conn) // welcome

		send(t, conn, MessageTypeTakeSeat, TakeSeatData{Name: "bob"})
		msg := readMessage(t, conn)
		require.Equal(t, MessageTypeSeatAssigned, msg.Type)

		var seat SeatAssignedData
		require.NoError(t, json.Unmarshal(msg.Data, &seat))
		assert.Equal(t, 1, seat.Seat)
		assert.Equal(t, "bob", seat.Name)
		assert.Equal(t, 1000, seat.Chips)
	})

	t.Run("unknown name is rejected", func(t *testing.T) {
		conn := dial(t, addr)
		readMessage(t, conn) // welcome

		send(t, conn, MessageTypeTakeSeat, TakeSeatData{Name: "mallory"})
		msg := readMessage(t, conn)
		assert.Equal(t, MessageTypeError, msg.Type)
	})
}

func TestActionValidation(t *testing.T) {
	_, _, addr := startTestServer(t)
	conn := dial(t, addr)
	readMessage(t, conn) // welcome

	t.Run("unknown action name", func(t *testing.T) {
		send(t, conn, MessageTypeAction, ActionData{Seat: 0, Action: "shove"})
		msg := readMessage(t, conn)
		assert.Equal(t, MessageTypeError, msg.Type)
	})

	t.Run("acting from an unclaimed seat", func(t *testing.T) {
		send(t, conn, MessageTypeAction, ActionData{Seat: 0, Action: "fold"})
		msg := readMessage(t, conn)
		assert.Equal(t, MessageTypeError, msg.Type)
	})

	t.Run("unknown message type", func(t *testing.T) {
		send(t, conn, MessageType("bogus"), nil)
		msg := readMessage(t, conn)
		assert.Equal(t, MessageTypeError, msg.Type)
	})
}

func TestEventsAreRelayed(t *testing.T) {
	_, table, addr := startTestServer(t)
	conn := dial(t, addr)
	readMessage(t, conn) // welcome

	require.NoError(t, table.Start())

	msg := readMessage(t, conn)
	require.Equal(t, MessageTypeGameEvent, msg.Type)

	var event GameEventData
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, game.EventTypeBlindsPosted, event.Event)
}
