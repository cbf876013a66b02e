package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrResolveCallerQueryIsNotConstructed = errors.New(
	"ResolveCallerQuery must be created via NewResolveCallerQuery constructor",
)

// ResolveCallerQuery turns the user id of a verified session into a Caller carrying
// the user's current role, so a role change takes effect on the next request.
type ResolveCallerQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResolveCallerQuery(userID kernel.UUID) (ResolveCallerQuery, error) {
	if err := userID.Validate(); err != nil {
		return ResolveCallerQuery{}, err
	}

	return ResolveCallerQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ResolveCallerQuery) Validate() error {
	return q.guard.Validate(ErrResolveCallerQueryIsNotConstructed)
}

func (q ResolveCallerQuery) UserID() kernel.UUID { return q.userID }
