package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sessionFile keeps the bearer token between CLI runs. The file is readable
// by the owner only.
type sessionFile struct {
	path string
}

func (s *sessionFile) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *sessionFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *sessionFile) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
