/*
Package epistemic provides a registry of named numeric constants, each tagged
with an epistemic label that records how much the value can be trusted.

Constants are grouped into named stores (for example "baseline" for measured
reference values and "proposed" for a model's own parameters). A Registry owns
the stores and moves through two states:

  - Initializing: constants may be registered and looked up
  - Frozen: registration is refused, lookups continue

Every lookup states which labels it is prepared to accept:

	reg := epistemic.New()
	_ = reg.Register("baseline", "c", 299792458, "m/s", models.Baseline, "CODATA 2018")
	_ = reg.Register("proposed", "alpha_model", 1/137.0, "", models.Proposed, "EDC §5")
	reg.Freeze()

	// A validation run must not silently pick up a proposed value.
	_, err := reg.GetConstant("alpha_model", models.NewLabelSet(models.Baseline, models.Derived))
	if errors.IsEpistemicViolation(err) {
	    ...
	}

A name registered in more than one store must agree on value and label;
disagreement is reported as a conflict on lookup and by Validate, never
resolved by store order.

Bulk tables are loaded through datastore.Source implementations (YAML, CSV
and TSV files, or a DynamoDB table) with Load and LoadAll. TakeSnapshot
renders the registry for export.
*/
package epistemic
