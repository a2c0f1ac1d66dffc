/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory datastore.Source for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/epistemic/models"
)

// Source is an in-memory implementation of datastore.Source for testing
type Source struct {
	mu       sync.RWMutex
	origin   string
	rows     []models.Row
	rowsFunc func(ctx context.Context) ([]models.Row, error)
	rowsErr  error
	calls    int
}

// New creates a new mock Source with the given origin name
func New(origin string) *Source {
	return &Source{origin: origin}
}

// WithRows appends rows; Index is assigned in order
func (m *Source) WithRows(rows ...models.Row) *Source {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range rows {
		r.Index = len(m.rows) + 1
		m.rows = append(m.rows, r)
	}
	return m
}

// WithRow appends one row built from its fields
func (m *Source) WithRow(name string, value float64, unit, label, source string) *Source {
	return m.WithRows(models.Row{Name: name, Value: value, Unit: unit, Label: label, Source: source})
}

// WithRowsFunc sets a custom rows function for testing
func (m *Source) WithRowsFunc(f func(ctx context.Context) ([]models.Row, error)) *Source {
	m.rowsFunc = f
	return m
}

// WithError makes Rows return an error
func (m *Source) WithError(err error) *Source {
	m.rowsErr = err
	return m
}

// Origin returns the configured origin name
func (m *Source) Origin() string {
	return m.origin
}

// Rows returns a copy of the configured rows
func (m *Source) Rows(ctx context.Context) ([]models.Row, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.rowsErr != nil {
		return nil, m.rowsErr
	}
	if m.rowsFunc != nil {
		return m.rowsFunc(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Row, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

// Calls returns how many times Rows was invoked
func (m *Source) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}
