/*
Package handler provides the HTTP surface of the chat relay.

This file contains the WebSocket entry point. Rate limiting already happened
in the route middleware; this handler upgrades the connection and runs the
ban gate before any login processing: a banned IP is told it is banned and
then disconnected, without ever reaching the hub.
*/
package handler

import (
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"portchat/internal/app/chat"
	"portchat/internal/pkg/logx"
	"portchat/internal/pkg/metrics"
)

const bannedCloseWait = 5 * time.Second

// HandleWebSocket returns the HandlerFunc that turns an HTTP request into a
// live chat connection.
func HandleWebSocket(upgrader websocket.Upgrader, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ip == "" {
			ip = "unknown_ip"
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		// Ban gate runs at connection establishment, before the login handler
		// can see the connection.
		if deps.Bans.IsBanned(ip) {
			metrics.BannedRejectionsTotal.Inc()
			logx.Warn("Banned IP attempted to connect.", "ip", ip)

			notifyBannedAndClose(conn)
			return
		}

		client := chat.NewClient(deps.Hub, conn, ip)

		go client.WritePump()

		logx.Info("WebSocket connection established.", "conn_id", client.ConnID())

		client.ReadPump()
	}
}

// notifyBannedAndClose tells the client it is banned, then closes the
// connection. Write failures are ignored; the close is what matters.
func notifyBannedAndClose(conn *websocket.Conn) {
	deadline := time.Now().Add(bannedCloseWait)

	if frame, err := chat.EncodeEvent(chat.EventBanned, chat.BannedPayload{By: "server"}); err == nil {
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.WriteMessage(websocket.TextMessage, frame)
	}

	closeFrame := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "banned")
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.WriteMessage(websocket.CloseMessage, closeFrame)
	_ = conn.Close()
}
