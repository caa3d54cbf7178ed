/*
Package store provides the persisted state of the relay: registered user
credentials and the banned IP set.

Both documents are flat JSON files, read fully at startup and rewritten fully
on change. The field names mirror the on-disk format of earlier deployments,
so existing users.json and bans.json files load unchanged.
*/
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"portchat/internal/pkg/logx"
)

// Identity is the durable credential and profile record for one username.
type Identity struct {
	// PasswordHash is the bcrypt digest of the user's password. The raw
	// password is never retained.
	PasswordHash string `json:"password"`

	// ProfilePic is the user's profile picture as an opaque data blob,
	// empty when the user never uploaded one.
	ProfilePic string `json:"profilePic"`
}

// UserStore holds the username -> Identity mapping backed by a JSON document.
// All access is serialized by a single mutex, including the read-modify-write
// in Upsert and the synchronous file rewrite.
type UserStore struct {
	path  string
	mu    sync.Mutex
	users map[string]Identity
}

// NewUserStore loads the user document at path. A missing file yields an
// empty store; a malformed file is an error.
func NewUserStore(path string) (*UserStore, error) {
	s := &UserStore{
		path:  path,
		users: make(map[string]Identity),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read user store %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s.users); err != nil {
		return nil, fmt.Errorf("failed to parse user store %s: %w", path, err)
	}

	logx.Info("User store loaded.", "path", path, "users", len(s.users))
	return s, nil
}

// HashPassword produces the one-way digest stored in place of the password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Lookup returns the Identity for username, reporting whether it exists.
func (s *UserStore) Lookup(username string) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.users[username]
	return id, ok
}

// CheckPassword reports whether password matches the stored hash for username.
// Unknown usernames always fail.
func (s *UserStore) CheckPassword(username, password string) bool {
	s.mu.Lock()
	id, ok := s.users[username]
	s.mu.Unlock()

	if !ok {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(id.PasswordHash), []byte(password)) == nil
}

// Upsert registers a new username or refreshes an existing one. A new
// username is inserted with the given hash and picture and the full store is
// persisted before returning, so the registration is durable before the login
// is acknowledged. For an existing username the stored password hash is never
// overwritten; only the profile picture is replaced, and only when a new
// non-empty one is supplied.
func (s *UserStore) Upsert(username, passwordHash, profilePic string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.users[username]; ok {
		if profilePic != "" {
			id.ProfilePic = profilePic
			s.users[username] = id
		}
		return s.users[username], nil
	}

	id := Identity{
		PasswordHash: passwordHash,
		ProfilePic:   profilePic,
	}
	s.users[username] = id

	if err := s.persistLocked(); err != nil {
		delete(s.users, username)
		return Identity{}, err
	}

	logx.Info("Registered new user.", "username", username)
	return id, nil
}

// persistLocked rewrites the full document. Callers must hold s.mu.
func (s *UserStore) persistLocked() error {
	raw, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user store: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write user store %s: %w", s.path, err)
	}

	return nil
}
