package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/pkg/guard"
)

var ErrListCourierDeliveriesQueryIsNotConstructed = errors.New(
	"ListCourierDeliveriesQuery must be created via NewListCourierDeliveriesQuery constructor",
)

// ListCourierDeliveriesQuery lists the deliveries assigned to the caller, whatever
// the caller's role.
type ListCourierDeliveriesQuery struct {
	caller access.Caller

	guard guard.ConstructorGuard
}

func NewListCourierDeliveriesQuery(caller access.Caller) (ListCourierDeliveriesQuery, error) {
	if err := caller.RequireAuthenticated("list own deliveries"); err != nil {
		return ListCourierDeliveriesQuery{}, err
	}

	return ListCourierDeliveriesQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListCourierDeliveriesQueryIsNotConstructed)
}
