/*
Package chat contains the core logic of the relay: the presence registry, the
per-connection client, and the hub that orchestrates login, message relay,
color changes, and disconnect cleanup.

This file defines the wire protocol: every WebSocket frame is a JSON envelope
with a named event and a structured payload. Event names and payload shapes
match the browser client and must not change.
*/
package chat

import "encoding/json"

// Events consumed from clients.
const (
	EventLogin       = "login"
	EventChatMessage = "chat message"
	EventColorChange = "colorChange"
)

// Events emitted to clients.
const (
	EventLoginResult = "loginResult"
	EventUserList    = "user list"
	EventChatBlocked = "chatBlocked"
	EventBanned      = "banned"
)

const (
	// MaxImageBytes is the ceiling for inline image payloads. Larger images
	// are dropped without a broadcast and without an error response, both to
	// protect transport buffers and to bound broadcast payload size.
	MaxImageBytes = 2 << 20

	// DefaultColor is assigned when a login omits the color field.
	DefaultColor = "rgb(255,255,255)"
)

// Envelope is the frame structure carried on the socket in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// EncodeEvent marshals a payload into a ready-to-send envelope frame.
func EncodeEvent(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}

// LoginPayload is the client's login request. Port is the room label the
// client wants to join; it is an opaque partition key, not a network port.
type LoginPayload struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	Port       string `json:"port"`
	ProfilePic string `json:"profilePic,omitempty"`
	Color      string `json:"color,omitempty"`
}

// LoginResultPayload acknowledges or rejects a login attempt.
type LoginResultPayload struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// MessagePayload is an inbound chat message. Only text and image are trusted
// from the client; identity fields are always taken from the session.
type MessagePayload struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// ChatPayload is the broadcast form of a chat message, built from the
// sender's authoritative session fields plus the message's own content.
type ChatPayload struct {
	User       string `json:"user"`
	Text       string `json:"text,omitempty"`
	Image      string `json:"image,omitempty"`
	ProfilePic string `json:"profilePic"`
	Color      string `json:"color"`
}

// ColorChangePayload is the inbound live color update.
type ColorChangePayload struct {
	NewColor string `json:"newColor"`
}

// ColorNoticePayload announces a user's color change to the room.
type ColorNoticePayload struct {
	User  string `json:"user"`
	Color string `json:"color"`
}

// ChatBlockedPayload is sent privately to a sender whose message was blocked
// by the moderation filter.
type ChatBlockedPayload struct {
	Reason string `json:"reason"`
}

// BannedPayload notifies a banned client before the server closes the
// connection.
type BannedPayload struct {
	By string `json:"by"`
}
