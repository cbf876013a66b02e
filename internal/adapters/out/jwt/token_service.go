// Package jwt issues and verifies HS256 session tokens.
package jwt

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "fastfeet"

var (
	ErrTokenExpired = errs.NewNotAuthorizedError("verify token", "token has expired")
	ErrTokenInvalid = errs.NewNotAuthorizedError("verify token", "invalid token")
)

type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewTokenService(signingKey string, ttl time.Duration) (*TokenService, error) {
	if signingKey == "" {
		return nil, errs.NewValueIsRequiredError("signingKey")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	return &TokenService{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

func (s *TokenService) Issue(userID kernel.UUID) (ports.IssuedToken, error) {
	if err := userID.Validate(); err != nil {
		return ports.IssuedToken{}, err
	}

	issuedAt := s.now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		Issuer:    issuer,
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return ports.IssuedToken{}, err
	}

	return ports.IssuedToken{
		AccessToken: signed,
		Claims: ports.SessionClaims{
			UserID:    userID,
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		},
	}, nil
}

func (s *TokenService) Verify(accessToken string) (ports.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.SessionClaims{}, ErrTokenExpired
		}
		return ports.SessionClaims{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return ports.SessionClaims{}, ErrTokenInvalid
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.SessionClaims{}, ErrTokenInvalid
	}

	return ports.SessionClaims{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
