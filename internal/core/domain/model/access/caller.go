package access

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller constructor")

// Caller is the authenticated identity a use case acts on behalf of.
type Caller struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewCaller(id kernel.UUID, role Role) (Caller, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Caller{}, err
	}

	return Caller{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}

func (c Caller) ID() kernel.UUID {
	return c.id
}

func (c Caller) Role() Role {
	return c.role
}

func (c Caller) IsAdmin() bool {
	return c.Validate() == nil && c.role == RoleAdmin
}

func (c Caller) IsCourier() bool {
	return c.Validate() == nil && c.role == RoleCourier
}

// RequireAuthenticated fails for a zero-value Caller.
func (c Caller) RequireAuthenticated(action string) error {
	if err := c.Validate(); err != nil {
		return errs.NewNotAuthorizedError(action, "caller is not authenticated")
	}
	return nil
}

// RequireAdmin fails with a NotAuthorizedError unless the caller currently holds ADMIN.
func (c Caller) RequireAdmin(action string) error {
	if !c.IsAdmin() {
		return errs.NewNotAuthorizedError(action, "ADMIN role required")
	}
	return nil
}

// RequireCourier fails with a NotAuthorizedError unless the caller currently holds COURIER.
func (c Caller) RequireCourier(action string) error {
	if !c.IsCourier() {
		return errs.NewNotAuthorizedError(action, "COURIER role required")
	}
	return nil
}
