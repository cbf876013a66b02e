package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
)

// ensureCPFIsFree turns the outcome of a GetByCPF lookup into a uniqueness check:
// a hit is a conflict, a miss is fine, anything else is propagated.
func ensureCPFIsFree(found bool, lookupErr error, cpf string) error {
	if lookupErr != nil {
		if errors.Is(lookupErr, errs.ErrObjectNotFound) {
			return nil
		}
		return lookupErr
	}
	if found {
		return errs.NewConflictError("cpf", cpf, "already exists")
	}
	return nil
}
