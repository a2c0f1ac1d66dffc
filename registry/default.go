/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"

	"github.com/suparena/epistemic"
	"github.com/suparena/epistemic/models"
)

var (
	defaultRegistry = epistemic.New()
	mu              sync.RWMutex
)

// Default returns the process-wide registry.
func Default() *epistemic.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return defaultRegistry
}

// Register adds a constant to the named store of the default registry.
func Register(store, name string, value float64, unit string, label models.Label, source string) error {
	return Default().Register(store, name, value, unit, label, source)
}

// MustRegister is like Register but panics on error. It is meant for
// package init functions that populate the default registry.
func MustRegister(store, name string, value float64, unit string, label models.Label, source string) {
	if err := Register(store, name, value, unit, label, source); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Freeze freezes the default registry.
func Freeze() {
	Default().Freeze()
}

// GetConstant looks a constant up in the default registry.
func GetConstant(name string, allow models.LabelSet) (models.Record, error) {
	return Default().GetConstant(name, allow)
}

// MustGetConstant is like GetConstant but panics with the lookup error.
// Scripts use it to stop at the first refused constant.
func MustGetConstant(name string, allow models.LabelSet) models.Record {
	rec, err := GetConstant(name, allow)
	if err != nil {
		panic(err)
	}
	return rec
}

// Replace swaps the default registry and returns a function restoring the
// previous one.
func Replace(r *epistemic.Registry) (restore func()) {
	mu.Lock()
	prev := defaultRegistry
	defaultRegistry = r
	mu.Unlock()

	return func() {
		mu.Lock()
		defaultRegistry = prev
		mu.Unlock()
	}
}
