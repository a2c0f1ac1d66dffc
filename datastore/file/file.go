/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package file reads bulk constant tables from YAML documents and delimited text files.
//
// YAML tables list their rows under a "constants" key:
//
//	constants:
//	  - name: c
//	    value: 299792458
//	    unit: m/s
//	    label: baseline
//	    source: CODATA 2018
//
// Delimited tables start with a header naming the columns; name, value and
// label are required, unit and source optional. Lines starting with '#' are
// comments.
//
//	name,value,unit,label,source
//	c,299792458,m/s,baseline,CODATA 2018
package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/epistemic/datastore"
	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

// Format selects the parser for a table file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
)

// Source reads one table file. The file is read on every call to Rows.
type Source struct {
	path   string
	format Format
}

var _ datastore.Source = (*Source)(nil)

// Open returns a Source for path, choosing the format from its extension.
func Open(path string) (*Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return New(path, FormatYAML), nil
	case ".csv":
		return New(path, FormatCSV), nil
	case ".tsv":
		return New(path, FormatTSV), nil
	default:
		return nil, errors.NewValidationError("path", fmt.Sprintf("unsupported table format %q", filepath.Ext(path)))
	}
}

// New returns a Source reading path in the given format.
func New(path string, format Format) *Source {
	return &Source{path: path, format: format}
}

// Origin returns the file path.
func (s *Source) Origin() string {
	return s.path
}

// Rows reads and decodes the file.
func (s *Source) Rows(ctx context.Context) ([]models.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening constant table: %w", err)
	}
	defer f.Close()

	switch s.format {
	case FormatYAML:
		return DecodeYAML(s.path, f)
	case FormatCSV:
		return DecodeDelimited(s.path, f, ',')
	case FormatTSV:
		return DecodeDelimited(s.path, f, '\t')
	default:
		return nil, errors.NewValidationError("format", fmt.Sprintf("unsupported table format %q", s.format))
	}
}

type yamlRow struct {
	Name   string   `yaml:"name"`
	Value  *float64 `yaml:"value"`
	Unit   string   `yaml:"unit"`
	Label  string   `yaml:"label"`
	Source string   `yaml:"source"`
}

type yamlTable struct {
	Constants []yamlRow `yaml:"constants"`
}

// DecodeYAML decodes a YAML table. origin is used in error messages only.
func DecodeYAML(origin string, r io.Reader) ([]models.Row, error) {
	var table yamlTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding %s: %w", origin, err)
	}

	rows := make([]models.Row, 0, len(table.Constants))
	for i, yr := range table.Constants {
		index := i + 1
		if yr.Name == "" {
			return nil, rowError(origin, index, "name", "missing name")
		}
		if yr.Value == nil {
			return nil, rowError(origin, index, "value", fmt.Sprintf("missing value for %q", yr.Name))
		}
		rows = append(rows, models.Row{
			Index:  index,
			Name:   yr.Name,
			Value:  *yr.Value,
			Unit:   yr.Unit,
			Label:  yr.Label,
			Source: yr.Source,
		})
	}
	return rows, nil
}

// DecodeDelimited decodes a delimited table with a header line.
func DecodeDelimited(origin string, r io.Reader, delim rune) ([]models.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", origin, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "value", "label"} {
		if _, ok := cols[required]; !ok {
			return nil, errors.NewValidationError("header", fmt.Sprintf("%s: missing %q column", origin, required))
		}
	}

	field := func(rec []string, col string) string {
		if i, ok := cols[col]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	var rows []models.Row
	for index := 1; ; index++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", origin, err)
		}

		name := field(rec, "name")
		if name == "" {
			return nil, rowError(origin, index, "name", "missing name")
		}
		raw := field(rec, "value")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, rowError(origin, index, "value", fmt.Sprintf("%q is not a number", raw))
		}

		rows = append(rows, models.Row{
			Index:  index,
			Name:   name,
			Value:  value,
			Unit:   field(rec, "unit"),
			Label:  field(rec, "label"),
			Source: field(rec, "source"),
		})
	}
	return rows, nil
}

func rowError(origin string, index int, field, msg string) error {
	return errors.NewValidationError(field, fmt.Sprintf("%s row %d: %s", origin, index, msg))
}
