// Package tokenstore persists the credential pair between CLI runs.
//
// The access and refresh tokens live in separate files under the state
// directory, mirroring the split the web client makes between local storage
// and a strict same-site cookie. Both files are written 0600.
package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"eventadmin/internal/domain"
)

const (
	accessTokenFile  = "access_token"
	refreshTokenFile = "refresh_token"
)

// Store is a file-backed domain.TokenStore. It also implements
// domain.TokenSource by reading the access token file at call time, so a
// logout in one command is respected by the next without any shared state.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created on first Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the persisted pair. Missing files yield empty tokens, not an
// error.
func (s *Store) Load() (domain.TokenPair, error) {
	access, err := s.readToken(accessTokenFile)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.readToken(refreshTokenFile)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Save writes both tokens, creating the state directory if needed.
func (s *Store) Save(pair domain.TokenPair) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, accessTokenFile), []byte(pair.AccessToken), 0o600); err != nil {
		return fmt.Errorf("write access token: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, refreshTokenFile), []byte(pair.RefreshToken), 0o600); err != nil {
		return fmt.Errorf("write refresh token: %w", err)
	}
	return nil
}

// Clear removes both token files. Clearing an already-empty store succeeds.
func (s *Store) Clear() error {
	for _, name := range []string{accessTokenFile, refreshTokenFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// AccessToken implements domain.TokenSource. Read failures surface as an
// empty token, which the backend answers with 401.
func (s *Store) AccessToken() string {
	access, err := s.readToken(accessTokenFile)
	if err != nil {
		return ""
	}
	return access
}

func (s *Store) readToken(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimSpace(string(b)), nil
}
