// Package guard marks domain objects as built through their constructors so that
// zero values can be told apart from valid instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects and entities. Only the type's
// constructor sets it, so a struct literal or zero value fails Validate.
//
//	type Delivery struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (d *Delivery) Validate() error {
//	    return d.guard.Validate(ErrDeliveryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owning object did not come from its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
