/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLabel is returned by ParseLabel for a token outside the closed label set.
var ErrUnknownLabel = errors.New("unknown epistemic label")

// Label classifies how a constant was obtained.
// The zero value is not a label.
type Label uint8

const (
	// Baseline is a measured or defined reference value (e.g. CODATA).
	Baseline Label = iota + 1
	// Derived is obtained mathematically from other constants.
	Derived
	// Identified is matched to a numerical pattern without a derivation.
	Identified
	// Calibrated is fitted against empirical data.
	Calibrated
	// Proposed is a speculative model parameter.
	Proposed
)

// labelCount is the number of variants; Labels iterate 1..labelCount.
const labelCount = 5

var labelNames = [...]string{
	Baseline:   "Baseline",
	Derived:    "Derived",
	Identified: "Identified",
	Calibrated: "Calibrated",
	Proposed:   "Proposed",
}

// AllLabelValues returns every label in declaration order.
func AllLabelValues() []Label {
	return []Label{Baseline, Derived, Identified, Calibrated, Proposed}
}

// Valid reports whether l is one of the five declared labels.
func (l Label) Valid() bool {
	return l >= Baseline && l <= Proposed
}

func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
	return labelNames[l]
}

// Token is the lower-case form used in data files and on the command line.
func (l Label) Token() string {
	return strings.ToLower(l.String())
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, uint8(l))
	}
	return []byte(l.Token()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLabel resolves a label token, ignoring case and surrounding whitespace.
func ParseLabel(token string) (Label, error) {
	t := strings.TrimSpace(token)
	for _, l := range AllLabelValues() {
		if strings.EqualFold(t, labelNames[l]) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, token)
}
