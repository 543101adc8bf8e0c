// Package store persists name -> description entries as a single JSON object
// file and retrieves them by fuzzy-matching a query against the descriptions.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// Entry is one remembered thing: a name and what it does.
type Entry struct {
	Name        string
	Description string
}

// Store holds the in-memory index backed by a JSON file. It assumes exclusive
// ownership of the file for the life of the process; every mutation rewrites
// the whole file in place.
type Store struct {
	path    string
	entries map[string]string
}

// Open loads the store at path, creating the file and its parent directory
// if they are missing. An empty file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: make(map[string]string)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &IOError{Err: err}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return &IOError{Err: err}
		}
		if err := os.WriteFile(s.path, nil, 0o644); err != nil {
			return &IOError{Err: err}
		}
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// persist overwrites the store file with the full mapping. The write is not
// atomic: a crash mid-write can leave a corrupt file.
func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return &DecodeError{Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// Set inserts or overwrites the entry for name and persists the store.
func (s *Store) Set(name, description string) error {
	s.entries[name] = description
	return s.persist()
}

// Delete removes the entry for name and persists the store. Deleting a name
// that is not in the store returns a KeyNotFoundError without writing.
func (s *Store) Delete(name string) error {
	if _, ok := s.entries[name]; !ok {
		return &KeyNotFoundError{Name: name}
	}
	delete(s.entries, name)
	return s.persist()
}

// Entries returns all entries sorted by name.
func (s *Store) Entries() []Entry {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Description: s.entries[name]})
	}
	return entries
}

// Len reports the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }
