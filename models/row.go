/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"github.com/go-openapi/strfmt"
)

// Row is one entry of a bulk constant table, as read from a file or table.
// Label holds the raw token; it is parsed when the row is loaded so that an
// unknown token can be reported against the row that carried it.
type Row struct {
	// Index is the 1-based position of the row within its origin.
	Index  int     `json:"-" yaml:"-" dynamodbav:"-"`
	Name   string  `json:"name" yaml:"name" dynamodbav:"Name"`
	Value  float64 `json:"value" yaml:"value" dynamodbav:"Value"`
	Unit   string  `json:"unit" yaml:"unit" dynamodbav:"Unit"`
	Label  string  `json:"label" yaml:"label" dynamodbav:"Label"`
	Source string  `json:"source" yaml:"source" dynamodbav:"Source"`
}

// Snapshot is a read-only rendering of a registry.
type Snapshot struct {
	GeneratedAt strfmt.DateTime `json:"generatedAt" yaml:"generatedAt"`
	State       string          `json:"state" yaml:"state"`
	Stores      []StoreSnapshot `json:"stores" yaml:"stores"`
}

// StoreSnapshot lists the records of one store, sorted by name.
type StoreSnapshot struct {
	Name    string   `json:"name" yaml:"name"`
	Records []Record `json:"records" yaml:"records"`
}
