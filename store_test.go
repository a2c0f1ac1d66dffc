/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package epistemic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

func TestStore(t *testing.T) {
	t.Run("RegisterAndLookup", func(t *testing.T) {
		s := NewStore("baseline")
		require.NoError(t, s.Register("c", 299792458, "m/s", models.Baseline, "CODATA"))

		rec, ok := s.Lookup("c")
		require.True(t, ok)
		assert.Equal(t, models.Record{Name: "c", Value: 299792458, Unit: "m/s", Label: models.Baseline, Source: "CODATA"}, rec)

		_, ok = s.Lookup("h")
		assert.False(t, ok)
		assert.Equal(t, "baseline", s.Category())
		assert.Equal(t, 1, s.Len())
	})

	t.Run("SealedStoreRejectsRegistration", func(t *testing.T) {
		s := NewStore("baseline")
		require.NoError(t, s.Register("c", 299792458, "m/s", models.Baseline, "CODATA"))
		s.seal()

		var frozen *errors.RegistryFrozenError
		require.ErrorAs(t, s.Register("h", 6.62607015e-34, "J s", models.Baseline, "CODATA"), &frozen)
		assert.Equal(t, "baseline", frozen.Store)
		assert.Equal(t, "h", frozen.Name)

		assert.True(t, errors.IsFrozen(s.Register("c", 299792458, "m/s", models.Baseline, "CODATA")))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("IdenticalReRegistrationIsNoOp", func(t *testing.T) {
		s := NewStore("baseline")
		require.NoError(t, s.Register("c", 299792458, "m/s", models.Baseline, "CODATA"))
		require.NoError(t, s.Register("c", 299792458, "m/s", models.Baseline, "CODATA"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("ReRegistrationKeepsFirstCitation", func(t *testing.T) {
		s := NewStore("baseline")
		require.NoError(t, s.Register("c", 299792458, "m/s", models.Baseline, "CODATA 2018"))
		require.NoError(t, s.Register("c", 299792458, "m s^-1", models.Baseline, "SI brochure"))

		rec, _ := s.Lookup("c")
		assert.Equal(t, "m/s", rec.Unit)
		assert.Equal(t, "CODATA 2018", rec.Source)
	})

	t.Run("ConflictingReRegistration", func(t *testing.T) {
		s := NewStore("calibrated")
		require.NoError(t, s.Register("g", 9.81, "m/s^2", models.Calibrated, "lab"))

		err := s.Register("g", 9.8, "m/s^2", models.Calibrated, "lab")
		require.True(t, errors.IsDuplicateName(err), "different value: %v", err)

		err = s.Register("g", 9.81, "m/s^2", models.Baseline, "lab")
		require.True(t, errors.IsDuplicateName(err), "different label: %v", err)

		var dup *errors.DuplicateNameInStoreError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "calibrated", dup.Store)
		assert.Equal(t, models.Calibrated, dup.Existing.Label)
		assert.Equal(t, models.Baseline, dup.Incoming.Label)

		rec, _ := s.Lookup("g")
		assert.Equal(t, 9.81, rec.Value, "store keeps the original record")
	})

	t.Run("InvalidRecords", func(t *testing.T) {
		s := NewStore("x")
		assert.True(t, errors.IsValidationError(s.Register("", 1, "", models.Baseline, "")))
		assert.True(t, errors.IsValidationError(s.Register("nan", math.NaN(), "", models.Baseline, "")))
		assert.True(t, errors.IsValidationError(s.Register("nolabel", 1, "", models.Label(0), "")))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("LookupReturnsCopy", func(t *testing.T) {
		s := NewStore("baseline")
		require.NoError(t, s.Register("e", 1.602176634e-19, "C", models.Baseline, "CODATA"))

		rec, _ := s.Lookup("e")
		rec.Value = 0
		rec.Label = models.Proposed

		again, _ := s.Lookup("e")
		assert.Equal(t, 1.602176634e-19, again.Value)
		assert.Equal(t, models.Baseline, again.Label)
	})

	t.Run("SortedListing", func(t *testing.T) {
		s := NewStore("mixed")
		require.NoError(t, s.Register("z", 1, "", models.Proposed, ""))
		require.NoError(t, s.Register("a", 2, "", models.Derived, ""))
		require.NoError(t, s.Register("m", 3, "", models.Identified, ""))

		assert.Equal(t, []string{"a", "m", "z"}, s.Names())

		recs := s.Records()
		require.Len(t, recs, 3)
		assert.Equal(t, "a", recs[0].Name)
		assert.Equal(t, models.Proposed, recs[2].Label)
	})
}
