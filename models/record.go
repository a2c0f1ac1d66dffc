/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRecord is wrapped by Record.Validate failures.
var ErrInvalidRecord = errors.New("invalid constant record")

// Record is one named constant with its provenance.
// Records are passed by value; a copy handed out by a registry
// cannot alter what the registry holds.
type Record struct {
	Name   string  `json:"name" yaml:"name"`
	Value  float64 `json:"value" yaml:"value"`
	Unit   string  `json:"unit" yaml:"unit"`
	Label  Label   `json:"label" yaml:"label"`
	Source string  `json:"source" yaml:"source"`
}

// SameValue reports whether r and other agree on value and label.
// Unit and source are citation metadata and do not take part.
func (r Record) SameValue(other Record) bool {
	return r.Value == other.Value && r.Label == other.Label
}

// Validate checks the fields a registry relies on.
func (r Record) Validate() error {
	switch {
	case r.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	case math.IsNaN(r.Value) || math.IsInf(r.Value, 0):
		return fmt.Errorf("%w: %s has non-finite value %v", ErrInvalidRecord, r.Name, r.Value)
	case !r.Label.Valid():
		return fmt.Errorf("%w: %s has invalid label %s", ErrInvalidRecord, r.Name, r.Label)
	}
	return nil
}

func (r Record) String() string {
	if r.Unit == "" {
		return fmt.Sprintf("%s = %g [%s; %s]", r.Name, r.Value, r.Label, r.Source)
	}
	return fmt.Sprintf("%s = %g %s [%s; %s]", r.Name, r.Value, r.Unit, r.Label, r.Source)
}

// StoreRecord is a record together with the store that holds it.
type StoreRecord struct {
	Store  string `json:"store" yaml:"store"`
	Record Record `json:"record" yaml:"record"`
}
