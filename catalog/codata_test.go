/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/epistemic"
	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

func TestRegisterCODATA(t *testing.T) {
	r := epistemic.New()
	require.NoError(t, RegisterCODATA(r))
	require.NoError(t, RegisterCODATA(r), "re-registration is idempotent")
	r.Freeze()

	baseline := models.NewLabelSet(models.Baseline)

	c, err := r.GetConstant("c", baseline)
	require.NoError(t, err)
	assert.Equal(t, 299792458.0, c.Value)
	assert.Equal(t, Source, c.Source)

	alpha, err := r.GetConstant("alpha", baseline)
	require.NoError(t, err)
	assert.InDelta(t, 1/137.035999084, alpha.Value, 1e-12)

	hbar, err := r.GetConstant("hbar", baseline)
	require.NoError(t, err)
	assert.InDelta(t, 1.054571817e-34, hbar.Value, 1e-43)

	_, err = r.GetConstant("c", models.NewLabelSet(models.Proposed))
	assert.True(t, errors.IsEpistemicViolation(err))

	assert.NoError(t, r.Validate())
}

func TestRecordsAreValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, rec := range Records() {
		assert.NoError(t, rec.Validate(), rec.Name)
		assert.Equal(t, models.Baseline, rec.Label)
		assert.False(t, seen[rec.Name], "duplicate %s", rec.Name)
		seen[rec.Name] = true
	}
	assert.Len(t, seen, len(definingConstants)+len(measuredConstants))
}

func TestRecordsReturnsCopy(t *testing.T) {
	recs := Records()
	require.NotEmpty(t, recs)
	recs[0].Value = 42
	recs[0].Label = models.Proposed

	fresh := Records()
	assert.NotEqual(t, 42.0, fresh[0].Value)
	assert.Equal(t, models.Baseline, fresh[0].Label)

	r := epistemic.New()
	require.NoError(t, RegisterCODATA(r))
	rec, err := r.GetConstant(fresh[0].Name, models.NewLabelSet(models.Baseline))
	require.NoError(t, err)
	assert.Equal(t, fresh[0].Value, rec.Value)
}

func TestBuiltInConflictsWithDisagreeingTable(t *testing.T) {
	r := epistemic.New()
	require.NoError(t, RegisterCODATA(r))
	require.NoError(t, r.Register("proposed", "alpha", 1/137.0, "dimensionless", models.Proposed, "EDC §5"))
	r.Freeze()

	_, err := r.GetConstant("alpha", models.AllLabels)
	assert.True(t, errors.IsConflict(err))
}
