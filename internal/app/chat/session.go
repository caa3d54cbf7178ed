package chat

// Session is the live, in-memory record binding one connection to an
// authenticated identity for its duration. It is owned exclusively by the
// presence registry: created on successful login, its Color mutated by
// color-change events, destroyed on disconnect.
type Session struct {
	ConnID     string
	Username   string
	IP         string
	Room       string
	ProfilePic string
	Color      string
}

// RosterEntry is one user's row in the "user list" broadcast.
type RosterEntry struct {
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
	Color      string `json:"color"`
}
