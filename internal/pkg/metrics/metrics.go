// Package metrics defines the Prometheus metrics exported by the chat relay.
// It is the single source of truth for metric names, labels, and help strings;
// the collectors register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portchat"

// ConnectedSessions tracks the number of live authenticated sessions.
var ConnectedSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "connected_sessions",
		Help:      "Current number of authenticated sessions in the presence registry.",
	},
)

// LoginsTotal counts login attempts by result.
// Label:
//   - result: "success", "rejected" (bad credentials or validation), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// MessagesBroadcastTotal counts chat messages relayed to a room.
var MessagesBroadcastTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_broadcast_total",
		Help:      "Total number of chat messages broadcast to rooms.",
	},
)

// MessagesBlockedTotal counts messages rejected by the moderation filter.
// Label:
//   - reason: the filter's reason code for the block
var MessagesBlockedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_blocked_total",
		Help:      "Total number of chat messages blocked by the moderation filter.",
	},
	[]string{"reason"},
)

// BannedRejectionsTotal counts connections refused because the IP is banned.
var BannedRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "banned_rejections_total",
		Help:      "Total number of connections rejected due to an IP ban.",
	},
)
