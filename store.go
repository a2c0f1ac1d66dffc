/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package epistemic

import (
	"sort"
	"sync"

	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

// Store is a named collection of constant records sharing a logical origin,
// such as "baseline" or "proposed". A store may mix labels.
//
// A store owned by a registry is sealed when the registry freezes; after
// that every registration fails with RegistryFrozenError, whoever holds the
// pointer.
type Store struct {
	mu       sync.RWMutex
	category string
	records  map[string]models.Record
	sealed   bool
}

// NewStore creates an empty store.
func NewStore(category string) *Store {
	return &Store{
		category: category,
		records:  make(map[string]models.Record),
	}
}

// Category returns the store's name.
func (s *Store) Category() string {
	return s.category
}

// Register adds a record. Registering an identical value and label again is
// a no-op; the first unit and source are kept.
func (s *Store) Register(name string, value float64, unit string, label models.Label, source string) error {
	return s.RegisterRecord(models.Record{
		Name:   name,
		Value:  value,
		Unit:   unit,
		Label:  label,
		Source: source,
	})
}

// RegisterRecord is Register in record form.
func (s *Store) RegisterRecord(rec models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return errors.NewRegistryFrozenError(s.category, rec.Name)
	}
	if err := rec.Validate(); err != nil {
		return errors.NewValidationError("record", err.Error())
	}
	if existing, exists := s.records[rec.Name]; exists {
		if existing.SameValue(rec) {
			return nil
		}
		return errors.NewDuplicateNameInStoreError(s.category, existing, rec)
	}

	s.records[rec.Name] = rec
	return nil
}

// Sealed reports whether the store has stopped accepting records.
func (s *Store) Sealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sealed
}

func (s *Store) seal() {
	s.mu.Lock()
	s.sealed = true
	s.mu.Unlock()
}

// Lookup returns a copy of the record registered under name.
func (s *Store) Lookup(name string) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	return rec, ok
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Names returns the registered names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Records returns copies of all records sorted by name.
func (s *Store) Records() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
