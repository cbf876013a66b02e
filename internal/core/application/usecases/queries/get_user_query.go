package queries

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery reads one account. Admin only.
type GetUserQuery struct {
	caller access.Caller
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(caller access.Caller, userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		caller: caller,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// GetUserQueryResponse is the account projection. It has no password field.
type GetUserQueryResponse struct {
	ID        kernel.UUID
	Name      string
	CPF       string
	Role      access.Role
	CreatedAt time.Time
}
