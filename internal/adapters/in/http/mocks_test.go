package http_test

import (
	"context"
	"time"

	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockResultHandler[C any, R any] struct {
	mock.Mock
}

func (m *MockResultHandler[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(accessToken string) (ports.SessionClaims, error) {
	args := m.Called(accessToken)
	claims, _ := args.Get(0).(ports.SessionClaims)
	return claims, args.Error(1)
}

type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
