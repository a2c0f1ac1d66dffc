/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenSelectsFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.csv":  FormatCSV,
		"a.tsv":  FormatTSV,
	} {
		src, err := Open(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, src.format, path)
		assert.Equal(t, path, src.Origin())
	}

	_, err := Open("a.json")
	assert.True(t, errors.IsValidationError(err))
}

func TestYAMLSource(t *testing.T) {
	path := writeTable(t, "baseline.yaml", `
constants:
  - name: c
    value: 299792458
    unit: m/s
    label: baseline
    source: CODATA 2018
  - name: alpha_model
    value: 0.0072992700729927
    unit: dimensionless
    label: Proposed
    source: EDC §5
`)
	src, err := Open(path)
	require.NoError(t, err)

	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.Row{Index: 1, Name: "c", Value: 299792458, Unit: "m/s", Label: "baseline", Source: "CODATA 2018"}, rows[0])
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, "Proposed", rows[1].Label, "label tokens stay raw")
}

func TestYAMLSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "missing value",
			content: "constants:\n  - name: c\n    label: baseline\n",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), "row 1")
			},
		},
		{
			name:    "missing name",
			content: "constants:\n  - value: 1\n    label: baseline\n  - value: 2\n",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidationError(err))
			},
		},
		{
			name:    "non numeric value",
			content: "constants:\n  - name: alpha\n    value: 1/137\n    label: proposed\n",
			check: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:    "unknown field",
			content: "constants:\n  - name: c\n    value: 1\n    lable: baseline\n",
			check: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML("test.yaml", strings.NewReader(tt.content))
			tt.check(t, err)
		})
	}
}

func TestEmptyTables(t *testing.T) {
	rows, err := DecodeYAML("empty.yaml", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = DecodeDelimited("empty.csv", strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVSource(t *testing.T) {
	path := writeTable(t, "proposed.csv", `# proposed model parameters
name, value, unit, label, source
alpha_model,0.0072992700729927,dimensionless,proposed,EDC §5
k_edc,0.5,,proposed,"ad hoc, first pass"
`)
	src, err := Open(path)
	require.NoError(t, err)

	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alpha_model", rows[0].Name)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "", rows[1].Unit)
	assert.Equal(t, "ad hoc, first pass", rows[1].Source)
	assert.Equal(t, 0.5, rows[1].Value)
}

func TestTSVColumnOrder(t *testing.T) {
	rows, err := DecodeDelimited("t.tsv", strings.NewReader("label\tname\tvalue\nderived\tx\t2.5\n"), '\t')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.Row{Index: 1, Name: "x", Value: 2.5, Label: "derived"}, rows[0])
}

func TestCSVErrors(t *testing.T) {
	_, err := DecodeDelimited("t.csv", strings.NewReader("name,value\nc,1\n"), ',')
	assert.True(t, errors.IsValidationError(err), "missing label column")

	_, err = DecodeDelimited("t.csv", strings.NewReader("name,value,label\nc,fast,baseline\n"), ',')
	require.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "t.csv row 1")

	_, err = DecodeDelimited("t.csv", strings.NewReader("name,value,label\nc,1,baseline,extra\n"), ',')
	assert.Error(t, err, "ragged rows are rejected")
}

func TestMissingFile(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), "absent.yaml"), FormatYAML)
	_, err := src.Rows(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
