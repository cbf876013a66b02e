package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrGetRecipientQueryIsNotConstructed = errors.New(
	"GetRecipientQuery must be created via NewGetRecipientQuery constructor",
)

// GetRecipientQuery reads one recipient. Admin only.
type GetRecipientQuery struct {
	caller      access.Caller
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRecipientQuery(caller access.Caller, recipientID kernel.UUID) (GetRecipientQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return GetRecipientQuery{}, err
	}

	return GetRecipientQuery{
		caller:      caller,
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetRecipientQuery) Validate() error {
	return q.guard.Validate(ErrGetRecipientQueryIsNotConstructed)
}

type GetRecipientQueryResponse struct {
	ID       kernel.UUID
	Name     string
	CPF      string
	Address  string
	Location kernel.Location
}
