/*
Package store provides the persisted state of the relay: registered user
credentials and the banned IP set.

This file holds the ban list. Bans are written by an external moderation
process; the relay only reads the set at startup and consults it when a
connection arrives. The map-of-bool document shape is kept so the file stays
readable if a mutation API is added later.
*/
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"portchat/internal/pkg/logx"
)

// BanStore is the read-only set of banned client IP addresses.
type BanStore struct {
	mu     sync.RWMutex
	banned map[string]bool
}

// NewBanStore loads the ban document at path. A missing file yields an empty
// set; a malformed file is an error.
func NewBanStore(path string) (*BanStore, error) {
	s := &BanStore{
		banned: make(map[string]bool),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read ban store %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s.banned); err != nil {
		return nil, fmt.Errorf("failed to parse ban store %s: %w", path, err)
	}

	logx.Info("Ban store loaded.", "path", path, "banned_ips", len(s.banned))
	return s, nil
}

// IsBanned reports whether ip is on the ban list.
func (s *BanStore) IsBanned(ip string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.banned[ip]
}
