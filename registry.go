/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package epistemic

import (
	stderrors "errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

// State is the lifecycle phase of a Registry.
type State int

const (
	// Initializing accepts stores and records.
	Initializing State = iota
	// Frozen only answers queries.
	Frozen
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Frozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Registry aggregates stores and answers label-checked constant lookups.
//
// A registry is populated during start-up, frozen with Freeze, then shared
// read-only. Lookups are permitted before freezing. All methods are safe for
// concurrent use; the frozen check and the registration it guards happen
// under the same lock.
type Registry struct {
	mu     sync.RWMutex
	state  State
	stores map[string]*Store
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry in the Initializing state.
func New(opts ...Option) *Registry {
	r := &Registry{
		stores: make(map[string]*Store),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current lifecycle phase.
func (r *Registry) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.State() == Frozen
}

// Register adds a constant to the named store, creating the store on first use.
func (r *Registry) Register(store, name string, value float64, unit string, label models.Label, source string) error {
	return r.RegisterRecord(store, models.Record{
		Name:   name,
		Value:  value,
		Unit:   unit,
		Label:  label,
		Source: source,
	})
}

// RegisterRecord is Register in record form.
func (r *Registry) RegisterRecord(store string, rec models.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Frozen {
		r.logger.Warn("Rejected registration after freeze",
			slog.String("store", store), slog.String("name", rec.Name))
		return errors.NewRegistryFrozenError(store, rec.Name)
	}
	if store == "" {
		return errors.NewValidationError("store", "store name must not be empty")
	}

	s, exists := r.stores[store]
	if !exists {
		s = NewStore(store)
		r.stores[store] = s
		r.logger.Debug("Created store", slog.String("store", store))
	}

	if err := s.RegisterRecord(rec); err != nil {
		return err
	}
	r.logger.Debug("Registered constant",
		slog.String("store", store),
		slog.String("name", rec.Name),
		slog.String("label", rec.Label.String()))
	return nil
}

// AddStore composes an existing store into the registry by reference.
// The registry seals the store when it freezes, so later writes through the
// caller's pointer fail too.
func (r *Registry) AddStore(s *Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Frozen {
		name := ""
		if s != nil {
			name = s.Category()
		}
		return errors.NewRegistryFrozenError(name, "")
	}
	if s == nil || s.Category() == "" {
		return errors.NewValidationError("store", "store must be non-nil and named")
	}
	if _, exists := r.stores[s.Category()]; exists {
		return errors.NewAlreadyExistsError("store", s.Category())
	}

	r.stores[s.Category()] = s
	r.logger.Debug("Added store", slog.String("store", s.Category()), slog.Int("records", s.Len()))
	return nil
}

// Freeze ends initialization and seals every store. Calling it again has no
// effect.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Frozen {
		return
	}
	r.state = Frozen

	records := 0
	for _, s := range r.stores {
		s.seal()
		records += s.Len()
	}
	r.logger.Info("Registry frozen", slog.Int("stores", len(r.stores)), slog.Int("records", records))
}

// GetConstant resolves name across all stores and returns a copy of the
// record if its label is in allow.
//
// A name held by several stores with disagreeing value or label is a
// conflict whatever the allow-set says.
func (r *Registry) GetConstant(name string, allow models.LabelSet) (models.Record, error) {
	hits := r.Lookup(name)
	if len(hits) == 0 {
		return models.Record{}, errors.NewConstantNotFoundError(name)
	}

	if err := checkUnanimous(name, hits); err != nil {
		return models.Record{}, err
	}

	rec := hits[0].Record
	if !allow.Contains(rec.Label) {
		return models.Record{}, errors.NewEpistemicViolationError(name, rec.Label, allow)
	}
	return rec, nil
}

// Lookup returns every store's record for name, ordered by store name.
// It applies no label check and no conflict check.
func (r *Registry) Lookup(name string) []models.StoreRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hits []models.StoreRecord
	for _, storeName := range r.sortedStoreNames() {
		if rec, ok := r.stores[storeName].Lookup(name); ok {
			hits = append(hits, models.StoreRecord{Store: storeName, Record: rec})
		}
	}
	return hits
}

// Validate reports a conflict error for every ambiguous name, joined.
func (r *Registry) Validate() error {
	var errs []error
	for _, name := range r.Names() {
		if err := checkUnanimous(name, r.Lookup(name)); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Stores returns the store names, sorted.
func (r *Registry) Stores() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedStoreNames()
}

// Store returns the named store. Once the registry is frozen the store is
// sealed and only its read methods succeed.
func (r *Registry) Store(name string) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stores[name]
	return s, ok
}

// Names returns the union of names across stores, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, s := range r.stores {
		for _, name := range s.Names() {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedStoreNames must be called with r.mu held.
func (r *Registry) sortedStoreNames() []string {
	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkUnanimous(name string, hits []models.StoreRecord) error {
	if len(hits) < 2 {
		return nil
	}
	for _, h := range hits[1:] {
		if !h.Record.SameValue(hits[0].Record) {
			return errors.NewConstantConflictError(name, hits)
		}
	}
	return nil
}
