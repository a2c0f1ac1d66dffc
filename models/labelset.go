/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"strings"
)

// LabelSet is the set of labels a call site is willing to accept.
// The zero value is the empty set, which accepts nothing.
type LabelSet uint8

// AllLabels contains every label.
const AllLabels LabelSet = 1<<Baseline | 1<<Derived | 1<<Identified | 1<<Calibrated | 1<<Proposed

// NewLabelSet builds a set from the given labels. Invalid labels are ignored.
func NewLabelSet(labels ...Label) LabelSet {
	var s LabelSet
	for _, l := range labels {
		s = s.Add(l)
	}
	return s
}

// Add returns s with l included.
func (s LabelSet) Add(l Label) LabelSet {
	if !l.Valid() {
		return s
	}
	return s | 1<<l
}

// Contains reports whether l is in the set.
func (s LabelSet) Contains(l Label) bool {
	return l.Valid() && s&(1<<l) != 0
}

// Labels returns the members in declaration order.
func (s LabelSet) Labels() []Label {
	out := make([]Label, 0, labelCount)
	for _, l := range AllLabelValues() {
		if s.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// Len returns the number of members.
func (s LabelSet) Len() int {
	return len(s.Labels())
}

// IsEmpty reports whether the set has no members.
func (s LabelSet) IsEmpty() bool {
	return s&AllLabels == 0
}

func (s LabelSet) String() string {
	labels := s.Labels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// ParseLabelSet parses a comma separated list of label tokens.
// The token "all" selects every label. An empty string yields the empty set.
func ParseLabelSet(list string) (LabelSet, error) {
	var s LabelSet
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.EqualFold(tok, "all") {
			s |= AllLabels
			continue
		}
		l, err := ParseLabel(tok)
		if err != nil {
			return 0, err
		}
		s = s.Add(l)
	}
	return s, nil
}
