/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"math"

	"github.com/suparena/epistemic"
	"github.com/suparena/epistemic/models"
)

const (
	// Store is the store the built-in table is registered into.
	Store = "baseline"
	// Source is the provenance recorded on every built-in record.
	Source = "CODATA 2018"
)

// definingConstants are the exact SI defining constants.
var definingConstants = []models.Record{
	{Name: "delta_nu_Cs", Value: 9192631770, Unit: "Hz"},
	{Name: "c", Value: 299792458, Unit: "m s^-1"},
	{Name: "h", Value: 6.62607015e-34, Unit: "J Hz^-1"},
	{Name: "e", Value: 1.602176634e-19, Unit: "C"},
	{Name: "k_B", Value: 1.380649e-23, Unit: "J K^-1"},
	{Name: "N_A", Value: 6.02214076e23, Unit: "mol^-1"},
	{Name: "K_cd", Value: 683, Unit: "lm W^-1"},
	{Name: "hbar", Value: 6.62607015e-34 / (2 * math.Pi), Unit: "J s"},
}

// measuredConstants are CODATA 2018 recommended values.
var measuredConstants = []models.Record{
	{Name: "alpha", Value: 7.2973525693e-3, Unit: "dimensionless"},
	{Name: "G", Value: 6.67430e-11, Unit: "m^3 kg^-1 s^-2"},
	{Name: "m_e", Value: 9.1093837015e-31, Unit: "kg"},
	{Name: "m_p", Value: 1.67262192369e-27, Unit: "kg"},
	{Name: "mu_0", Value: 1.25663706212e-6, Unit: "N A^-2"},
	{Name: "epsilon_0", Value: 8.8541878128e-12, Unit: "F m^-1"},
	{Name: "R_inf", Value: 10973731.568160, Unit: "m^-1"},
	{Name: "a_0", Value: 5.29177210903e-11, Unit: "m"},
}

// Records returns a fresh copy of the built-in table, labelled Baseline.
// Changing the result does not affect later calls or RegisterCODATA.
func Records() []models.Record {
	out := make([]models.Record, 0, len(definingConstants)+len(measuredConstants))
	for _, group := range [][]models.Record{definingConstants, measuredConstants} {
		for _, rec := range group {
			rec.Label = models.Baseline
			rec.Source = Source
			out = append(out, rec)
		}
	}
	return out
}

// RegisterCODATA registers the built-in table into the baseline store of r.
// Registering it twice is harmless.
func RegisterCODATA(r *epistemic.Registry) error {
	for _, rec := range Records() {
		if err := r.RegisterRecord(Store, rec); err != nil {
			return err
		}
	}
	return nil
}
