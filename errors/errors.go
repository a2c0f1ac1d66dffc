/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suparena/epistemic/models"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a constant is not registered in any store
	ErrNotFound = errors.New("constant not found")

	// ErrConflict is returned when a name resolves to disagreeing records
	ErrConflict = errors.New("constant conflict")

	// ErrEpistemicViolation is returned when a constant's label is outside the allow-set
	ErrEpistemicViolation = errors.New("epistemic violation")

	// ErrFrozen is returned when registering into a frozen registry
	ErrFrozen = errors.New("registry frozen")

	// ErrDuplicateName is returned when a store already holds a different record under the name
	ErrDuplicateName = errors.New("duplicate name in store")

	// ErrInvalidLabel is returned when a bulk row carries an unknown label token
	ErrInvalidLabel = errors.New("invalid label")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists is returned when adding a store whose name is taken
	ErrAlreadyExists = errors.New("already exists")
)

// ConstantNotFoundError reports a name no store holds.
type ConstantNotFoundError struct {
	Name string
}

func (e *ConstantNotFoundError) Error() string {
	return fmt.Sprintf("constant %q not found in any store", e.Name)
}

func (e *ConstantNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConstantConflictError reports a name that resolves to disagreeing records
// across stores.
type ConstantConflictError struct {
	Name    string
	Records []models.StoreRecord
}

func (e *ConstantConflictError) Error() string {
	parts := make([]string, len(e.Records))
	for i, r := range e.Records {
		parts[i] = fmt.Sprintf("%s: %g (%s, %s)", r.Store, r.Record.Value, r.Record.Label, r.Record.Source)
	}
	return fmt.Sprintf("constant %q is ambiguous across stores: %s", e.Name, strings.Join(parts, "; "))
}

func (e *ConstantConflictError) Is(target error) bool {
	return target == ErrConflict
}

// EpistemicViolationError reports a resolved label the caller did not allow.
type EpistemicViolationError struct {
	Name    string
	Actual  models.Label
	Allowed models.LabelSet
}

func (e *EpistemicViolationError) Error() string {
	return fmt.Sprintf("constant %q is labelled %s, caller allows %s", e.Name, e.Actual, e.Allowed)
}

func (e *EpistemicViolationError) Is(target error) bool {
	return target == ErrEpistemicViolation
}

// RegistryFrozenError reports a registration attempted after freezing.
type RegistryFrozenError struct {
	Store string
	Name  string
}

func (e *RegistryFrozenError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("registry is frozen: cannot add store %q", e.Store)
	}
	return fmt.Sprintf("registry is frozen: cannot register %q in store %q", e.Name, e.Store)
}

func (e *RegistryFrozenError) Is(target error) bool {
	return target == ErrFrozen
}

// DuplicateNameInStoreError reports a conflicting re-registration within one store.
type DuplicateNameInStoreError struct {
	Store    string
	Existing models.Record
	Incoming models.Record
}

func (e *DuplicateNameInStoreError) Error() string {
	return fmt.Sprintf("store %q already holds %q as %g (%s), refusing %g (%s)",
		e.Store, e.Existing.Name, e.Existing.Value, e.Existing.Label, e.Incoming.Value, e.Incoming.Label)
}

func (e *DuplicateNameInStoreError) Is(target error) bool {
	return target == ErrDuplicateName
}

// InvalidLabelError reports an unrecognised label token in a bulk row.
type InvalidLabelError struct {
	Origin string
	Row    int
	Name   string
	Token  string
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("%s row %d (%q): invalid label %q", e.Origin, e.Row, e.Name, e.Token)
}

func (e *InvalidLabelError) Is(target error) bool {
	return target == ErrInvalidLabel
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AlreadyExistsError represents an error when a named item already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// Helper functions for creating errors

// NewConstantNotFoundError creates a new ConstantNotFoundError
func NewConstantNotFoundError(name string) error {
	return &ConstantNotFoundError{Name: name}
}

// NewConstantConflictError creates a new ConstantConflictError
func NewConstantConflictError(name string, records []models.StoreRecord) error {
	return &ConstantConflictError{Name: name, Records: records}
}

// NewEpistemicViolationError creates a new EpistemicViolationError
func NewEpistemicViolationError(name string, actual models.Label, allowed models.LabelSet) error {
	return &EpistemicViolationError{Name: name, Actual: actual, Allowed: allowed}
}

// NewRegistryFrozenError creates a new RegistryFrozenError
func NewRegistryFrozenError(store, name string) error {
	return &RegistryFrozenError{Store: store, Name: name}
}

// NewDuplicateNameInStoreError creates a new DuplicateNameInStoreError
func NewDuplicateNameInStoreError(store string, existing, incoming models.Record) error {
	return &DuplicateNameInStoreError{Store: store, Existing: existing, Incoming: incoming}
}

// NewInvalidLabelError creates a new InvalidLabelError
func NewInvalidLabelError(origin string, row int, name, token string) error {
	return &InvalidLabelError{Origin: origin, Row: row, Name: name, Token: token}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a cross-store conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsEpistemicViolation checks if an error is an allow-set violation
func IsEpistemicViolation(err error) bool {
	return errors.Is(err, ErrEpistemicViolation)
}

// IsFrozen checks if an error is a frozen registry error
func IsFrozen(err error) bool {
	return errors.Is(err, ErrFrozen)
}

// IsDuplicateName checks if an error is a conflicting re-registration
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

// IsInvalidLabel checks if an error is an invalid label token error
func IsInvalidLabel(err error) bool {
	return errors.Is(err, ErrInvalidLabel)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
