package ports

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
)

// PasswordHasher turns plain passwords into stored hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify returns nil when password matches hash.
	Verify(hash string, password string) error
}

// SessionClaims identify an issued session token.
type SessionClaims struct {
	UserID    kernel.UUID
	TokenID   string
	ExpiresAt time.Time
}

type IssuedToken struct {
	AccessToken string
	Claims      SessionClaims
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(userID kernel.UUID) (IssuedToken, error)
	Verify(accessToken string) (SessionClaims, error)
}

// TokenRevoker remembers logged-out sessions until they would have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
