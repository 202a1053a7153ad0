package view

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const adminKeyFile = "admin_key"

// Session persists the admin credential across restarts, the browser
// local-storage analog. The credential lives in a single file under the
// user config dir; an empty string means admin mode is off.
type Session struct {
	path string

	mu  sync.Mutex
	key string
}

// DefaultSessionDir returns the per-user directory used to persist
// session state.
func DefaultSessionDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "podsummary"), nil
}

// NewSession loads any previously stored credential from dir, creating
// the directory if needed.
func NewSession(dir string) (*Session, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	s := &Session{path: filepath.Join(dir, adminKeyFile)}
	data, err := os.ReadFile(s.path)
	if err == nil {
		s.key = strings.TrimSpace(string(data))
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// AdminKey returns the stored credential, or "" when none is set.
func (s *Session) AdminKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

// SetAdminKey stores the credential and persists it. This is the only
// writer; views never touch the file directly.
func (s *Session) SetAdminKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path, []byte(key), 0o600); err != nil {
		return err
	}
	s.key = key
	return nil
}

// ClearAdminKey removes the credential and its backing file.
func (s *Session) ClearAdminKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.key = ""
	return nil
}
