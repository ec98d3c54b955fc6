package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Tiliavir/legacy-echo/internal/model"
)

var (
	ErrNotFound  = errors.New("entry not found")
	ErrAmbiguous = errors.New("entry id prefix is ambiguous")
)

// Store keeps the entries of one session in memory, newest first.
// Entries are addressed by ID, never by position.
type Store struct {
	entries []model.Entry
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Append inserts entry at the front of the store.
func (s *Store) Append(entry model.Entry) {
	s.entries = append([]model.Entry{entry.Clone()}, s.entries...)
}

// Update replaces the entry holding id with entry. The replacement keeps id
// and its position.
func (s *Store) Update(id string, entry model.Entry) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	entry = entry.Clone()
	entry.ID = id
	s.entries[i] = entry
	return nil
}

// Remove deletes the entry holding id.
func (s *Store) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return nil
}

// Get returns the entry holding id.
func (s *Store) Get(id string) (model.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Entry{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return s.entries[i].Clone(), nil
}

// Find resolves an exact ID or a unique ID prefix.
func (s *Store) Find(prefix string) (model.Entry, error) {
	if prefix == "" {
		return model.Entry{}, fmt.Errorf("find: %w", ErrNotFound)
	}
	if e, err := s.Get(prefix); err == nil {
		return e, nil
	}
	match := -1
	for i, e := range s.entries {
		if !strings.HasPrefix(e.ID, prefix) {
			continue
		}
		if match >= 0 {
			return model.Entry{}, fmt.Errorf("find %s: %w", prefix, ErrAmbiguous)
		}
		match = i
	}
	if match < 0 {
		return model.Entry{}, fmt.Errorf("find %s: %w", prefix, ErrNotFound)
	}
	return s.entries[match].Clone(), nil
}

// All returns a copy of every entry, newest first.
func (s *Store) All() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
