package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// sessionSlot is the single named slot the session lives in, mirroring the
// browser frontend's localStorage key.
const sessionSlot = "userInfo.json"

// Session is the authenticated client state: identity, role flag and the
// bearer token. It is an explicit object handed to whoever needs it, loaded
// once at startup and cleared on logout.
type Session struct {
	UserID  string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// LoggedIn reports whether the session carries a token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// SessionStore persists the session as JSON under a single file slot so it
// survives restarts until explicit logout.
type SessionStore struct {
	path string
}

// NewSessionStore keeps the session slot inside dir.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, sessionSlot)}
}

// Load reads the persisted session. A missing slot is not an error — it
// just means nobody is logged in.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save overwrites the slot with the given session.
func (s *SessionStore) Save(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the slot. Clearing an already-empty slot is fine.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
