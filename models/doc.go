/*
Package models defines the value types shared across the epistemic registry.

Key Types:

Label:
The closed set of provenance categories a constant can carry:

	models.Baseline    // measured or defined reference value
	models.Derived     // obtained mathematically from other constants
	models.Identified  // matched to a numerical pattern
	models.Calibrated  // fitted against data
	models.Proposed    // speculative model parameter

LabelSet:
The allow-set a call site declares. It is a bitset over Label, so an
unknown or misspelled label cannot be expressed:

	allow := models.NewLabelSet(models.Baseline, models.Derived)
	allow.Contains(models.Proposed) // false

Record:
One named constant with value, unit, label and citation. Records are values
and are copied out of the registry.

Row:
One entry of a bulk table (file or DynamoDB) before validation. The label is
kept as the raw token so that loaders can report the offending row.

StreamResult / StreamOptions:
Paged reads from remote sources, configured with functional options:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}
*/
package models
