package commands

import (
	"errors"

	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrRevokeSessionCommandIsNotConstructed = errors.New(
	"RevokeSessionCommand must be created via NewRevokeSessionCommand constructor",
)

// RevokeSessionCommand logs out the session identified by the verified claims.
type RevokeSessionCommand struct { //nolint:recvcheck //using for validation
	claims ports.SessionClaims

	guard guard.ConstructorGuard
}

func NewRevokeSessionCommand(claims ports.SessionClaims) (RevokeSessionCommand, error) {
	if claims.TokenID == "" {
		return RevokeSessionCommand{}, errs.NewValueIsRequiredError("token id")
	}
	if claims.ExpiresAt.IsZero() {
		return RevokeSessionCommand{}, errs.NewValueIsRequiredError("token expiry")
	}

	return RevokeSessionCommand{
		claims: claims,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RevokeSessionCommand) Validate() error {
	return c.guard.Validate(ErrRevokeSessionCommandIsNotConstructed)
}

func (c RevokeSessionCommand) Claims() ports.SessionClaims { return c.claims }
