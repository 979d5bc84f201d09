// Package session persists the logged-in user between client runs: one JSON
// file holding {id, name, email}. Absent file means anonymous.
package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skillswap/skillswap-be/model"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved session, or (nil, nil) when none exists.
func (s *Store) Load() (*model.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session %s: %w", s.path, err)
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parsing session %s: %w", s.path, err)
	}
	return &sess, nil
}

func (s *Store) Save(sess *model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing session %s: %w", s.path, err)
	}
	return nil
}

// Clear logs out. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session %s: %w", s.path, err)
	}
	return nil
}
