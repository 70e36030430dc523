// Package store persists the ordered project entry list.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/hopper/internal/entry"
	"github.com/zhubert/hopper/internal/errors"
)

// DataFilename is the entry list file inside the data directory.
const DataFilename = "projects.json"

// Store holds the ordered entry list. Order is user-significant: it
// determines display and selection precedence, and is changed only by the
// explicit prepend/append/remove operations below.
type Store struct {
	mu       sync.RWMutex
	entries  []entry.Entry
	filePath string
}

// dataDir returns the path to the data directory
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hopper"), nil
}

// dataPath returns the path to the entry list file
func dataPath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataFilename), nil
}

// Load reads the entry list from the default location, seeding an empty
// list file on first use.
func Load() (*Store, error) {
	path, err := dataPath()
	if err != nil {
		return nil, errors.StoreLoadFailed("", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the entry list from the given file. A missing file is
// created holding an empty list, so later saves and external edits have a
// stable location to work with.
func LoadFrom(path string) (*Store, error) {
	s := &Store{entries: []entry.Entry{}, filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.StoreLoadFailed(path, err)
		}
		if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
			return nil, errors.StoreLoadFailed(path, err)
		}
		return s, nil
	}
	if err != nil {
		return nil, errors.StoreLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, errors.StoreLoadFailed(path, err)
	}
	if s.entries == nil {
		s.entries = []entry.Entry{}
	}
	return s, nil
}

// Save writes the entry list back to its file as indented JSON.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errors.StoreSaveFailed(s.filePath, err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return errors.StoreSaveFailed(s.filePath, err)
	}
	return nil
}

// Entries returns a copy of the entry list in stored order.
func (s *Store) Entries() []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]entry.Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Append adds an entry at the end of the list.
func (s *Store) Append(e entry.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

// Prepend adds an entry at the start of the list, giving it the highest
// selection precedence.
func (s *Store) Prepend(e entry.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]entry.Entry{e}, s.entries...)
}

// RemovePath removes every entry whose path matches exactly. Returns the
// number of entries removed.
func (s *Store) RemovePath(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	remaining := s.entries[:0]
	for _, e := range s.entries {
		if e.Path == path {
			removed++
		} else {
			remaining = append(remaining, e)
		}
	}
	s.entries = remaining
	return removed
}

// RemoveAt removes the entries at the given positions. Positions out of
// range are ignored.
func (s *Store) RemoveAt(indices []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s.entries) {
			drop[i] = true
		}
	}

	remaining := make([]entry.Entry, 0, len(s.entries)-len(drop))
	for i, e := range s.entries {
		if !drop[i] {
			remaining = append(remaining, e)
		}
	}
	removed := len(s.entries) - len(remaining)
	s.entries = remaining
	return removed
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
