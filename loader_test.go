/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package epistemic

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/suparena/epistemic/datastore/file"
	"github.com/suparena/epistemic/datastore/mock"
	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("RegistersRows", func(t *testing.T) {
		r := newTestRegistry()
		src := mock.New("memory").
			WithRow("c", 299792458, "m/s", "baseline", "CODATA 2018").
			WithRow("alpha_model_refined", 1/136.92, "dimensionless", "Derived", "EDC")

		report, err := Load(ctx, r, "mixed", src)
		require.NoError(t, err)
		assert.Equal(t, LoadReport{Store: "mixed", Origin: "memory", Rows: 2}, report)

		rec, err := r.GetConstant("alpha_model_refined", models.NewLabelSet(models.Derived))
		require.NoError(t, err)
		assert.Equal(t, 1/136.92, rec.Value)
	})

	t.Run("InvalidLabelNamesRow", func(t *testing.T) {
		r := newTestRegistry()
		src := mock.New("tables/proposed.csv").
			WithRow("k1", 1, "", "proposed", "").
			WithRow("k2", 2, "", "hunch", "")

		_, err := Load(ctx, r, "proposed", src)

		var il *errors.InvalidLabelError
		require.ErrorAs(t, err, &il)
		assert.Equal(t, "tables/proposed.csv", il.Origin)
		assert.Equal(t, 2, il.Row)
		assert.Equal(t, "k2", il.Name)
		assert.Equal(t, "hunch", il.Token)
	})

	t.Run("EmptyLabelIsInvalid", func(t *testing.T) {
		r := newTestRegistry()
		_, err := Load(ctx, r, "s", mock.New("memory").WithRow("k", 1, "", "", ""))
		assert.True(t, errors.IsInvalidLabel(err))
	})

	t.Run("RegistrationErrorsKeepTheirType", func(t *testing.T) {
		r := newTestRegistry()
		src := mock.New("memory").
			WithRow("g", 9.81, "m/s^2", "calibrated", "lab").
			WithRow("g", 9.80, "m/s^2", "calibrated", "lab")

		_, err := Load(ctx, r, "calibrated", src)
		require.True(t, errors.IsDuplicateName(err))
		assert.Contains(t, err.Error(), "memory row 2")
	})

	t.Run("FrozenRegistry", func(t *testing.T) {
		r := newTestRegistry()
		r.Freeze()

		_, err := Load(ctx, r, "baseline", mock.New("memory").WithRow("c", 1, "", "baseline", ""))
		assert.True(t, errors.IsFrozen(err))
	})

	t.Run("SourceError", func(t *testing.T) {
		boom := stderrors.New("disk on fire")
		_, err := Load(ctx, newTestRegistry(), "s", mock.New("memory").WithError(boom))
		assert.ErrorIs(t, err, boom)
	})
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	baseline := filepath.Join(dir, "baseline.yaml")
	require.NoError(t, os.WriteFile(baseline, []byte(`
constants:
  - name: c
    value: 299792458
    unit: m/s
    label: baseline
    source: CODATA 2018
`), 0o644))

	proposed := filepath.Join(dir, "proposed.csv")
	require.NoError(t, os.WriteFile(proposed, []byte("name,value,unit,label,source\nc,3e8,m/s,proposed,rounded\n"), 0o644))

	baseSrc, err := file.Open(baseline)
	require.NoError(t, err)
	propSrc, err := file.Open(proposed)
	require.NoError(t, err)

	r := newTestRegistry()
	reports, err := LoadAll(ctx, r,
		Binding{Store: "baseline", Source: baseSrc},
		Binding{Store: "proposed", Source: propSrc},
	)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, 1, reports[1].Rows)

	// Loading succeeds; the ambiguity surfaces on lookup and in Validate.
	_, err = r.GetConstant("c", models.AllLabels)
	assert.True(t, errors.IsConflict(err))
	assert.True(t, errors.IsConflict(r.Validate()))
}

func TestLoadAllStopsAtFirstError(t *testing.T) {
	r := newTestRegistry()
	second := mock.New("second").WithRow("b", 1, "", "derived", "")

	reports, err := LoadAll(context.Background(), r,
		Binding{Store: "a", Source: mock.New("first").WithRow("a", 1, "", "nope", "")},
		Binding{Store: "b", Source: second},
	)
	assert.True(t, errors.IsInvalidLabel(err))
	assert.Empty(t, reports)
	assert.Equal(t, 0, second.Calls())
}

func TestTakeSnapshot(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register("proposed", "k_edc", 0.5, "dimensionless", models.Proposed, "EDC §5"))
	require.NoError(t, r.Register("baseline", "h", 6.62607015e-34, "J s", models.Baseline, "CODATA 2018"))
	require.NoError(t, r.Register("baseline", "c", 299792458, "m/s", models.Baseline, "CODATA 2018"))
	r.Freeze()

	snap := TakeSnapshot(r)
	assert.Equal(t, "frozen", snap.State)
	assert.False(t, time.Time(snap.GeneratedAt).IsZero())
	require.Len(t, snap.Stores, 2)
	assert.Equal(t, "baseline", snap.Stores[0].Name)
	assert.Equal(t, "c", snap.Stores[0].Records[0].Name)

	out, err := yaml.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(out), "label: baseline")
	assert.Contains(t, string(out), "generatedAt:")
	assert.Contains(t, string(out), "state: frozen")
}
