/*
Package chat contains the core logic of the relay.

This file defines the presence registry, the authoritative table of connected
identities keyed by connection ID and partitioned by room. It is the only
state shared across connection handlers, so every operation takes the
registry lock; rosters are snapshots taken at the instant of the call.
*/
package chat

import (
	"sort"
	"sync"
)

// presenceEntry pairs a session with its join sequence number, which keeps
// roster ordering deterministic within a single process run.
type presenceEntry struct {
	session Session
	joined  uint64
}

// Registry is the in-memory table of connected sessions.
type Registry struct {
	mu       sync.RWMutex
	seq      uint64
	sessions map[string]*presenceEntry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*presenceEntry),
	}
}

// Add inserts the session for connID, replacing any previous session held by
// the same connection. A connection holds at most one session.
func (r *Registry) Add(connID string, s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.sessions[connID] = &presenceEntry{session: s, joined: r.seq}
}

// Remove deletes the session for connID, returning the removed session so the
// caller knows which room to notify. No-op when the connection has no session.
func (r *Registry) Remove(connID string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[connID]
	if !ok {
		return Session{}, false
	}

	delete(r.sessions, connID)
	return entry.session, true
}

// Get returns the session for connID, if any.
func (r *Registry) Get(connID string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.sessions[connID]
	if !ok {
		return Session{}, false
	}
	return entry.session, true
}

// UpdateColor sets the color of connID's session and returns the updated
// session. No-op when the connection has no session.
func (r *Registry) UpdateColor(connID, newColor string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[connID]
	if !ok {
		return Session{}, false
	}

	entry.session.Color = newColor
	return entry.session, true
}

// ListByRoom returns the roster snapshot for room in join order.
func (r *Registry) ListByRoom(room string) []RosterEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entriesByRoomLocked(room)

	roster := make([]RosterEntry, 0, len(entries))
	for _, e := range entries {
		roster = append(roster, RosterEntry{
			Name:       e.session.Username,
			ProfilePic: e.session.ProfilePic,
			Color:      e.session.Color,
		})
	}
	return roster
}

// connIDsByRoom returns the connection IDs present in room in join order,
// used by the hub to fan out broadcasts.
func (r *Registry) connIDsByRoom(room string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entriesByRoomLocked(room)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.session.ConnID)
	}
	return ids
}

// Len returns the number of live sessions across all rooms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

func (r *Registry) entriesByRoomLocked(room string) []*presenceEntry {
	entries := make([]*presenceEntry, 0, len(r.sessions))
	for _, e := range r.sessions {
		if e.session.Room == room {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].joined < entries[j].joined
	})
	return entries
}
