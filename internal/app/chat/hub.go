/*
Package chat contains the core logic of the relay.

This file defines the Hub, the per-connection session state machine and the
moderated broadcast pipeline. Every connection event (login, chat message,
color change, disconnect) flows through one Hub method; the whole sequence of
mutate-registry-then-broadcast runs under a single lock, so registry state and
room emission order stay consistent without finer-grained locking. Broadcast
is fire-and-forget into each client's buffered send queue.
*/
package chat

import (
	"sync"

	"github.com/rs/zerolog"

	"portchat/internal/app/moderation"
	"portchat/internal/app/store"
	"portchat/internal/pkg/errs"
	"portchat/internal/pkg/logx"
	"portchat/internal/pkg/metrics"
)

// Emitter is the hub's view of one live connection. *Client implements it;
// tests substitute a recording fake.
type Emitter interface {
	// ConnID returns the unique identifier of the live connection.
	ConnID() string

	// IP returns the client's remote address.
	IP() string

	// Emit queues a named event for delivery to this connection. Delivery is
	// best-effort; a full queue drops the frame.
	Emit(event string, data any)

	// Close tears the connection down.
	Close()
}

// Hub orchestrates all connection events against the credential store, the
// moderation filter, and the presence registry.
type Hub struct {
	// mu serializes event handling. The hot path is not performance-critical;
	// one hub-wide lock keeps the registry and room emission order consistent.
	mu sync.Mutex

	users    *store.UserStore
	registry *Registry

	// clients maps connection ID to the connection's emitter for every
	// authenticated connection. Unauthenticated connections are not tracked;
	// they receive no broadcasts.
	clients map[string]Emitter

	logger zerolog.Logger
}

// NewHub constructs a Hub bound to the given credential store.
func NewHub(users *store.UserStore) *Hub {
	hubLogger := logx.Logger().With().Str("component", "Hub").Logger()

	return &Hub{
		users:    users,
		registry: NewRegistry(),
		clients:  make(map[string]Emitter),
		logger:   hubLogger,
	}
}

// Registry exposes the presence registry, primarily for the health surface.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// recoverHandler is the fault boundary around every event handler: a panic is
// logged and swallowed so it never terminates the connection or the process.
// The connection stays in its prior state and may continue to send events.
func (h *Hub) recoverHandler(event string, c Emitter) {
	if rec := recover(); rec != nil {
		h.logger.Error().
			Str("event", event).
			Str("conn_id", c.ConnID()).
			Interface("panic", rec).
			Msg("Recovered from handler fault.")
	}
}

// Login handles the login event: Unauthenticated -> Authenticated.
func (h *Hub) Login(c Emitter, p LoginPayload) {
	defer h.recoverHandler(EventLogin, c)

	h.mu.Lock()
	defer h.mu.Unlock()

	// Client-side validation is not trusted; re-check here.
	if p.Name == "" || p.Password == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		c.Emit(EventLoginResult, LoginResultPayload{
			Success: false,
			Message: errs.NewError(errs.ErrMissingCredentials).Message,
		})
		return
	}

	if p.Port == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		c.Emit(EventLoginResult, LoginResultPayload{
			Success: false,
			Message: errs.NewError(errs.ErrMissingRoom).Message,
		})
		return
	}

	var passwordHash string
	if _, registered := h.users.Lookup(p.Name); registered {
		if !h.users.CheckPassword(p.Name, p.Password) {
			h.logger.Warn().Str("username", p.Name).Msg("Login rejected: password mismatch.")
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			c.Emit(EventLoginResult, LoginResultPayload{
				Success: false,
				Message: errs.NewError(errs.ErrIncorrectPassword).Message,
			})
			return
		}
	} else {
		hash, err := store.HashPassword(p.Password)
		if err != nil {
			h.logger.Error().Err(err).Str("username", p.Name).Msg("Login failed: password hashing error.")
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			c.Emit(EventLoginResult, LoginResultPayload{
				Success: false,
				Message: errs.NewError(errs.ErrUnknown).Message,
			})
			return
		}
		passwordHash = hash
	}

	identity, err := h.users.Upsert(p.Name, passwordHash, p.ProfilePic)
	if err != nil {
		h.logger.Error().Err(err).Str("username", p.Name).Msg("Login failed: could not persist identity.")
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		c.Emit(EventLoginResult, LoginResultPayload{
			Success: false,
			Message: errs.NewError(errs.ErrUnknown).Message,
		})
		return
	}

	// A connection holds at most one session. A re-login replaces the
	// previous one; the old room is told right away if it changed.
	if prev, ok := h.registry.Remove(c.ConnID()); ok {
		metrics.ConnectedSessions.Dec()
		if prev.Room != p.Port {
			h.broadcastRosterLocked(prev.Room)
		}
	}

	color := p.Color
	if color == "" {
		color = DefaultColor
	}

	h.registry.Add(c.ConnID(), Session{
		ConnID:     c.ConnID(),
		Username:   p.Name,
		IP:         c.IP(),
		Room:       p.Port,
		ProfilePic: identity.ProfilePic,
		Color:      color,
	})
	h.clients[c.ConnID()] = c
	metrics.ConnectedSessions.Inc()
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.logger.Info().
		Str("username", p.Name).
		Str("room", p.Port).
		Str("conn_id", c.ConnID()).
		Msg("Client logged in.")

	h.broadcastRosterLocked(p.Port)
	c.Emit(EventLoginResult, LoginResultPayload{Success: true})
}

// ChatMessage handles the chat message event. Ignored without a session.
// Oversized images are dropped silently; text goes through the moderation
// filter before the payload is built from the session's authoritative
// identity fields and broadcast to the whole room, sender included.
func (h *Hub) ChatMessage(c Emitter, p MessagePayload) {
	defer h.recoverHandler(EventChatMessage, c)

	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.registry.Get(c.ConnID())
	if !ok {
		return
	}

	if len(p.Image) > MaxImageBytes {
		h.logger.Warn().
			Str("username", sess.Username).
			Int("image_bytes", len(p.Image)).
			Msg("Dropped oversized image payload.")
		return
	}

	decision := moderation.Classify(p.Text)
	if !decision.Allowed {
		metrics.MessagesBlockedTotal.WithLabelValues(decision.Reason).Inc()
		c.Emit(EventChatBlocked, ChatBlockedPayload{Reason: decision.Reason})
		return
	}

	payload := ChatPayload{
		User:       sess.Username,
		Text:       p.Text,
		Image:      p.Image,
		ProfilePic: sess.ProfilePic,
		Color:      sess.Color,
	}

	h.broadcastLocked(sess.Room, EventChatMessage, payload)
	metrics.MessagesBroadcastTotal.Inc()
}

// ColorChange handles the live color update event. Ignored without a session.
// The room receives the color notice first, then the refreshed roster.
func (h *Hub) ColorChange(c Emitter, p ColorChangePayload) {
	defer h.recoverHandler(EventColorChange, c)

	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.registry.UpdateColor(c.ConnID(), p.NewColor)
	if !ok {
		return
	}

	h.broadcastLocked(sess.Room, EventColorChange, ColorNoticePayload{
		User:  sess.Username,
		Color: sess.Color,
	})
	h.broadcastRosterLocked(sess.Room)
}

// Disconnect handles connection teardown: Authenticated -> Terminated. The
// room the session was in gets the updated roster. A disconnect before login
// completed is a no-op.
func (h *Hub) Disconnect(c Emitter) {
	defer h.recoverHandler("disconnect", c)

	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, c.ConnID())

	sess, ok := h.registry.Remove(c.ConnID())
	if !ok {
		return
	}

	metrics.ConnectedSessions.Dec()

	h.logger.Info().
		Str("username", sess.Username).
		Str("room", sess.Room).
		Str("conn_id", c.ConnID()).
		Msg("Client disconnected.")

	h.broadcastRosterLocked(sess.Room)
}

// Shutdown closes every tracked connection. Used on graceful server stop.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	clients := make([]Emitter, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]Emitter)
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}

	h.logger.Info().Int("closed_connections", len(clients)).Msg("Hub shutdown complete.")
}

// broadcastLocked fans an event out to every connection in room, in join
// order. Callers must hold h.mu.
func (h *Hub) broadcastLocked(room, event string, data any) {
	for _, connID := range h.registry.connIDsByRoom(room) {
		if cl, ok := h.clients[connID]; ok {
			cl.Emit(event, data)
		}
	}
}

// broadcastRosterLocked sends the room's current roster to the whole room.
// Callers must hold h.mu.
func (h *Hub) broadcastRosterLocked(room string) {
	h.broadcastLocked(room, EventUserList, h.registry.ListByRoom(room))
}
