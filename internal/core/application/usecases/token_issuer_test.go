package usecases_test

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/ports"
)

type staticTokenIssuer struct {
	issuedFor kernel.UUID
}

func (t *staticTokenIssuer) Issue(userID kernel.UUID) (ports.IssuedToken, error) {
	t.issuedFor = userID
	return ports.IssuedToken{
		AccessToken: "token",
		Claims:      ports.SessionClaims{UserID: userID, TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)},
	}, nil
}

func (t *staticTokenIssuer) Verify(string) (ports.SessionClaims, error) {
	return ports.SessionClaims{UserID: t.issuedFor, TokenID: "jti"}, nil
}
