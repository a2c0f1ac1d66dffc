/*
Package registry holds the process-wide epistemic registry.

Programs that share one set of constants across packages populate it during
initialization and freeze it before the first computation:

	func init() {
	    registry.MustRegister("baseline", "c", 299792458, "m/s", models.Baseline, "CODATA 2018")
	}

	func main() {
	    registry.Freeze()
	    c := registry.MustGetConstant("c", models.NewLabelSet(models.Baseline))
	    ...
	}

MustGetConstant panics with the registry's diagnostic (not found, conflict,
or epistemic violation), which stops a script at the offending lookup.

Tests swap in a private registry with Replace:

	restore := registry.Replace(epistemic.New())
	defer restore()
*/
package registry
