// Package store holds the single live CV document and mediates all mutation.
package store

import (
	"sync"

	"github.com/mahmoud/cv-studio/internal/types"
)

// Store owns the current CVData. Mutation is synchronous and immediately
// visible to the next read; there is no history or undo. The store performs
// no shape validation — wholesale replacements are validated upstream by the
// importer, and path updates trust their caller.
type Store struct {
	mu sync.RWMutex
	cv *types.CVData
}

// New creates a store seeded with the given document. The document is cloned
// on the way in so the caller cannot alias the store's copy.
func New(initial *types.CVData) *Store {
	if initial == nil {
		initial = &types.CVData{}
	}
	return &Store{cv: initial.Clone()}
}

// Snapshot returns a deep copy of the current document. Exporters render from
// a snapshot so concurrent edits can never tear the output.
func (s *Store) Snapshot() *types.CVData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cv.Clone()
}

// Replace swaps in a whole new document.
func (s *Store) Replace(cv *types.CVData) {
	clone := cv.Clone()
	s.mu.Lock()
	s.cv = clone
	s.mu.Unlock()
}

// UpdateField replaces the text leaf addressed by path. On any resolution
// error the document is left untouched.
func (s *Store) UpdateField(path []string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leaf, err := resolve(s.cv, path)
	if err != nil {
		return err
	}
	*leaf = value
	return nil
}
