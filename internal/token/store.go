// Package token manages the on-disk bearer token for the platform API.
package token

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the token file. The token is an opaque string; no
// structure is assumed beyond surrounding whitespace being insignificant.
type Store struct {
	path string
}

// DefaultPath returns the default token file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".flowlift", "token"), nil
}

// NewStore creates a store for the given token file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the token file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored token. A missing file is not an error; it returns an
// empty token so the caller can fall back to other sources.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token with owner-only permissions, creating the parent
// directory when needed.
func (s *Store) Save(token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Setup prompts for a token on r, persists it, and returns it. Used by the
// interactive `token setup` command.
func (s *Store) Setup(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter platform API token: ")
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return "", fmt.Errorf("no token provided")
	}
	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return "", fmt.Errorf("no token provided")
	}
	if err := s.Save(token); err != nil {
		return "", err
	}
	fmt.Fprintf(w, "Token saved to %s\n", s.path)
	return token, nil
}
