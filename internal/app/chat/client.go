/*
Package chat contains the core logic of the relay.

This file defines the Client struct, one live WebSocket connection. It runs
the read and write pumps, decodes inbound envelopes, and dispatches each named
event to the hub. Events for one connection are handled sequentially in the
read pump, so no ordering can be lost between a connection's own events.
*/
package chat

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"portchat/internal/pkg/logx"
)

const (
	// timeout for a single write to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time to wait for a Pong before the connection is considered dead.
	pongWait = 60 * time.Second

	// frequency of server Ping messages.
	pingPeriod = (pongWait * 9) / 10

	// maximum inbound frame size. Above MaxImageBytes so an oversized image
	// can be read and silently dropped instead of killing the socket.
	maxFrameBytes = 4 << 20

	// capacity of the per-connection outbound queue.
	sendQueueSize = 256
)

// Client represents an active WebSocket connection.
type Client struct {
	hub *Hub

	// underlying WebSocket connection.
	conn *websocket.Conn

	// connID uniquely identifies this live connection.
	connID string

	// ip is the client's remote address, as seen at connection time.
	ip string

	// send queues encoded frames waiting to be written to the connection.
	send chan []byte

	closeOnce sync.Once

	logger zerolog.Logger
}

// NewClient wraps an upgraded WebSocket connection. The connection ID is
// generated here and stays fixed for the connection's lifetime.
func NewClient(hub *Hub, wsConn *websocket.Conn, ip string) *Client {
	connID := uuid.NewString()

	clientLogger := logx.Logger().With().
		Str("conn_id", connID).
		Logger()

	return &Client{
		hub:    hub,
		conn:   wsConn,
		connID: connID,
		ip:     ip,
		send:   make(chan []byte, sendQueueSize),
		logger: clientLogger,
	}
}

// ConnID returns the connection's unique identifier.
func (c *Client) ConnID() string {
	return c.connID
}

// IP returns the client's remote address.
func (c *Client) IP() string {
	return c.ip
}

// Emit encodes the event and queues it for delivery. Delivery is best-effort:
// when the queue is full the frame is dropped with a warning, matching the
// fire-and-forget broadcast contract.
func (c *Client) Emit(event string, data any) {
	frame, err := EncodeEvent(event, data)
	if err != nil {
		c.logger.Error().Err(err).Str("event", event).Msg("Failed to encode outbound event.")
		return
	}

	select {
	case c.send <- frame:
	default:
		c.logger.Warn().
			Str("event", event).
			Int("queue_len", len(c.send)).
			Msg("Client send queue full, dropping frame.")
	}
}

// Close shuts the outbound queue down, which makes WritePump send a close
// frame and tear the connection down.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// ReadPump reads frames from the connection until it closes, dispatching each
// decoded envelope to the hub. It owns heartbeat handling and runs the
// disconnect cleanup when the loop ends.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxFrameBytes)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading frame (client close/going away)")
			}
			break
		}

		c.dispatch(frame)
	}
}

// cleanupOnDisconnect notifies the hub and closes the underlying connection
// once the read pump terminates.
func (c *Client) cleanupOnDisconnect() {
	c.logger.Info().Msg("Client connection cleanup starting.")

	c.hub.Disconnect(c)
	c.Close()

	if err := c.conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Client connection close error")
	}
}

// dispatch decodes one inbound envelope and routes it to the hub handler for
// its event. Unknown events and malformed payloads are logged and ignored;
// they never terminate the connection.
func (c *Client) dispatch(frame []byte) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid JSON frame")
		return
	}

	switch env.Event {
	case EventLogin:
		var p LoginPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			c.logger.Warn().Err(err).Msg("Client sent invalid login payload")
			return
		}
		c.hub.Login(c, p)

	case EventChatMessage:
		var p MessagePayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			c.logger.Warn().Err(err).Msg("Client sent invalid chat message payload")
			return
		}
		c.hub.ChatMessage(c, p)

	case EventColorChange:
		var p ColorChangePayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			c.logger.Warn().Err(err).Msg("Client sent invalid colorChange payload")
			return
		}
		c.hub.ColorChange(c, p)

	default:
		c.logger.Warn().Str("event", env.Event).Msg("Client sent unsupported event")
	}
}

// WritePump writes queued frames to the connection and keeps the heartbeat
// alive. It exits when the send queue closes or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("Client connection close error in WritePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !c.writeQueuedFrame(frame, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePing() {
				return
			}
		}
	}
}

// writeQueuedFrame writes one frame pulled from the send queue. Returns false
// when the pump should terminate.
func (c *Client) writeQueuedFrame(frame []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Debug().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		c.logger.Error().Err(err).Msg("Error writing frame")
		return false
	}

	return true
}

// writePing sends the periodic heartbeat Ping. Returns false when the pump
// should terminate.
func (c *Client) writePing() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Error().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}
