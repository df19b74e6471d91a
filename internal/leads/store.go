package leads

import "sync"

// Store holds the currently loaded lead table. Uploading a new file
// replaces the table wholesale; nothing is persisted across restarts.
type Store struct {
	mu    sync.RWMutex
	table *Table
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a newly parsed table.
func (s *Store) Replace(t *Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
}

// Table returns the current table, or ErrNoTable when nothing has been
// uploaded yet.
func (s *Store) Table() (*Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil, ErrNoTable
	}
	return s.table, nil
}
