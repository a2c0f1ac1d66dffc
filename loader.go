/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package epistemic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suparena/epistemic/datastore"
	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

// Binding pairs a store name with the table that populates it.
type Binding struct {
	Store  string
	Source datastore.Source
}

// LoadReport summarises one loaded table.
type LoadReport struct {
	Store  string
	Origin string
	Rows   int
}

// Load registers every row of src into the named store. Each row is checked
// by the same rules as Register; the first failing row aborts the load and
// the error names its origin and row.
func Load(ctx context.Context, reg *Registry, store string, src datastore.Source) (LoadReport, error) {
	report := LoadReport{Store: store, Origin: src.Origin()}

	rows, err := src.Rows(ctx)
	if err != nil {
		return report, fmt.Errorf("loading %s into store %q: %w", report.Origin, store, err)
	}

	for _, row := range rows {
		label, err := models.ParseLabel(row.Label)
		if err != nil {
			return report, errors.NewInvalidLabelError(report.Origin, row.Index, row.Name, row.Label)
		}

		rec := models.Record{
			Name:   row.Name,
			Value:  row.Value,
			Unit:   row.Unit,
			Label:  label,
			Source: row.Source,
		}
		if err := reg.RegisterRecord(store, rec); err != nil {
			return report, fmt.Errorf("%s row %d: %w", report.Origin, row.Index, err)
		}
		report.Rows++
	}

	reg.logger.Info("Loaded constant table",
		slog.String("store", store),
		slog.String("origin", report.Origin),
		slog.Int("rows", report.Rows))
	return report, nil
}

// LoadAll loads bindings in order and stops at the first error.
func LoadAll(ctx context.Context, reg *Registry, bindings ...Binding) ([]LoadReport, error) {
	reports := make([]LoadReport, 0, len(bindings))
	for _, b := range bindings {
		report, err := Load(ctx, reg, b.Store, b.Source)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
