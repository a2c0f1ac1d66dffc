/*
Package errors provides semantic error types for the epistemic registry.

Every failure of the registry is a programmer or data error, never a
transient fault, so each one carries the data needed to print a precise
diagnostic: the constant name, the offending label, the caller's allow-set,
or the disagreeing records.

Common Errors:

	var (
	    ErrNotFound           = errors.New("constant not found")
	    ErrConflict           = errors.New("constant conflict")
	    ErrEpistemicViolation = errors.New("epistemic violation")
	    ErrFrozen             = errors.New("registry frozen")
	    ErrDuplicateName      = errors.New("duplicate name in store")
	    ErrInvalidLabel       = errors.New("invalid label")
	)

Usage:

	rec, err := reg.GetConstant("c", models.NewLabelSet(models.Baseline))
	if err != nil {
	    var v *errors.EpistemicViolationError
	    if stderrors.As(err, &v) {
	        log.Fatalf("%s is %s", v.Name, v.Actual)
	    }
	    return err
	}

The typed errors match their sentinel through errors.Is, also when wrapped.
*/
package errors
