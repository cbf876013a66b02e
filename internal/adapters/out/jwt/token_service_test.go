package jwt_test

import (
	"testing"
	"time"

	"fastfeet/internal/adapters/out/jwt"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestTokenService_IssueThenVerify(t *testing.T) {
	s, err := jwt.NewTokenService(secret, time.Hour)
	require.NoError(t, err)
	userID := kernel.NewUUID()

	issued, err := s.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, issued.AccessToken)
	assert.True(t, issued.Claims.UserID.IsEqual(userID))
	assert.NotEmpty(t, issued.Claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.Claims.ExpiresAt, 2*time.Second)

	claims, err := s.Verify(issued.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.UserID.IsEqual(userID))
	assert.Equal(t, issued.Claims.TokenID, claims.TokenID)
	assert.True(t, claims.ExpiresAt.Equal(issued.Claims.ExpiresAt))
}

func TestTokenService_FreshTokenIDPerIssue(t *testing.T) {
	s, err := jwt.NewTokenService(secret, time.Hour)
	require.NoError(t, err)
	userID := kernel.NewUUID()

	first, err := s.Issue(userID)
	require.NoError(t, err)
	second, err := s.Issue(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first.Claims.TokenID, second.Claims.TokenID)
}

func TestTokenService_Expired(t *testing.T) {
	s, err := jwt.NewTokenService(secret, time.Minute)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	s.SetClock(func() time.Time { return past })
	issued, err := s.Issue(kernel.NewUUID())
	require.NoError(t, err)

	s.SetClock(time.Now)
	_, err = s.Verify(issued.AccessToken)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	other, err := jwt.NewTokenService("another-secret", time.Hour)
	require.NoError(t, err)
	issued, err := other.Issue(kernel.NewUUID())
	require.NoError(t, err)

	s, err := jwt.NewTokenService(secret, time.Hour)
	require.NoError(t, err)

	_, err = s.Verify(issued.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
		Subject:   kernel.NewUUID().String(),
		ID:        "jti",
		Issuer:    "fastfeet",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	s, err := jwt.NewTokenService(secret, time.Hour)
	require.NoError(t, err)

	_, err = s.Verify(unsigned)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestTokenService_RejectsNilSubject(t *testing.T) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   "00000000-0000-0000-0000-000000000000",
		ID:        "jti",
		Issuer:    "fastfeet",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	s, err := jwt.NewTokenService(secret, time.Hour)
	require.NoError(t, err)

	_, err = s.Verify(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	s, err := jwt.NewTokenService(secret, time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err = s.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid, token)
	}
}

func TestNewTokenService_Validation(t *testing.T) {
	_, err := jwt.NewTokenService("", time.Hour)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = jwt.NewTokenService(secret, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
