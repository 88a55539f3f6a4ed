package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoToken is returned when an authenticated operation runs without a
// stored session token.
var ErrNoToken = errors.New("not authenticated")

// Session is the single owner of the bearer token: set by Login, read by
// every authenticated call site, cleared by Logout. It is backed by a token
// file so the session survives process restarts.
type Session struct {
	mu    sync.Mutex
	path  string
	token string
}

// Open loads the session backed by the token file at path. A missing file
// means an anonymous session, not an error.
func Open(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Login stores the token and persists it with owner-only permissions.
func (s *Session) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return errors.New("refusing to store an empty token")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.token = token
	return nil
}

// Logout clears the session unconditionally. Removing an already-absent
// token file is not an error.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// CurrentToken returns the stored token or ErrNoToken.
func (s *Session) CurrentToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// IsAuthenticated is a pure read of the current session state.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}
