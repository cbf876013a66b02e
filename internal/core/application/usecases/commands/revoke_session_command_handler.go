package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

type RevokeSessionCommandHandler struct {
	revoker ports.TokenRevoker
}

func NewRevokeSessionCommandHandler(revoker ports.TokenRevoker) RevokeSessionCommandHandler {
	return RevokeSessionCommandHandler{
		revoker: revoker,
	}
}

func (h *RevokeSessionCommandHandler) Handle(ctx context.Context, cmd RevokeSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.revoker.Revoke(ctx, cmd.Claims().TokenID, cmd.Claims().ExpiresAt)
}
