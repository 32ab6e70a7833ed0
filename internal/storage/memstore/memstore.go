// Package memstore is an in-memory Store used by engine tests and for
// embedding without a data directory.
package memstore

import (
	"fmt"
	"sort"
	"sync"
)

// MemStore keeps deep copies of table images in a map, so callers can
// mutate loaded images freely before saving them back.
type MemStore struct {
	mu     sync.RWMutex
	tables map[string][][]string
}

// New creates an empty in-memory store.
func New() *MemStore {
	return &MemStore{tables: make(map[string][][]string)}
}

// Root describes the store for display purposes.
func (s *MemStore) Root() string { return "(in-memory)" }

// Path returns the table name itself; there is no file behind it.
func (s *MemStore) Path(table string) string { return table }

// Exists reports whether the table is present.
func (s *MemStore) Exists(table string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tables[table]
	return ok
}

// Load returns a deep copy of the table image, or an empty image when
// the table is absent.
func (s *MemStore) Load(table string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.tables[table]
	if !ok {
		return nil, nil
	}
	return copyRows(rows), nil
}

// Save replaces the table image with a deep copy of rows.
func (s *MemStore) Save(table string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = copyRows(rows)
	return nil
}

// Remove deletes the table.
func (s *MemStore) Remove(table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[table]; !ok {
		return fmt.Errorf("memstore: table %s does not exist", table)
	}
	delete(s.tables, table)
	return nil
}

// List returns all table names, sorted.
func (s *MemStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		rowCopy := make([]string, len(row))
		copy(rowCopy, row)
		out[i] = rowCopy
	}
	return out
}
