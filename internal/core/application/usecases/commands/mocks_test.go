package commands_test

import (
	"context"
	"testing"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByCPF(ctx context.Context, cpf kernel.CPF) (*user.User, error) {
	args := m.Called(ctx, cpf)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRecipientRepository) Update(ctx context.Context, r *recipient.Recipient) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRecipientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*recipient.Recipient)
	return r, args.Error(1)
}

func (m *MockRecipientRepository) GetByCPF(ctx context.Context, cpf kernel.CPF) (*recipient.Recipient, error) {
	args := m.Called(ctx, cpf)
	r, _ := args.Get(0).(*recipient.Recipient)
	return r, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery, expected delivery.Status) error {
	return m.Called(ctx, d, expected).Error(0)
}

func (m *MockDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ExistsByRecipient(ctx context.Context, recipientID kernel.UUID) (bool, error) {
	args := m.Called(ctx, recipientID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) GetUnpublished(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	ns, _ := args.Get(0).([]*notification.Notification)
	return ns, args.Error(1)
}

func (m *MockNotificationRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) RecipientRepository() ports.RecipientRepository {
	return m.Called().Get(0).(ports.RecipientRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockUserUoWFactory struct{ uow *MockUoW }

func (f MockUserUoWFactory) Create() commands.UserUoW { return f.uow }

type MockRecipientUoWFactory struct{ uow *MockUoW }

func (f MockRecipientUoWFactory) Create() commands.RecipientUoW { return f.uow }

type MockDeliveryUoWFactory struct{ uow *MockUoW }

func (f MockDeliveryUoWFactory) Create() commands.DeliveryUoW { return f.uow }

type MockNotificationUoWFactory struct{ uow *MockUoW }

func (f MockNotificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash string, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID kernel.UUID) (ports.IssuedToken, error) {
	args := m.Called(userID)
	return args.Get(0).(ports.IssuedToken), args.Error(1)
}

func (m *MockTokenIssuer) Verify(accessToken string) (ports.SessionClaims, error) {
	args := m.Called(accessToken)
	return args.Get(0).(ports.SessionClaims), args.Error(1)
}

type MockTokenRevoker struct{ mock.Mock }

func (m *MockTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *MockTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, ns []*notification.Notification) error {
	return m.Called(ctx, ns).Error(0)
}

// fixtures

func newAdmin(t *testing.T) access.Caller {
	t.Helper()
	c, err := access.NewCaller(kernel.NewUUID(), access.RoleAdmin)
	require.NoError(t, err)
	return c
}

func newCourier(t *testing.T) access.Caller {
	t.Helper()
	c, err := access.NewCaller(kernel.NewUUID(), access.RoleCourier)
	require.NoError(t, err)
	return c
}

func mustCPF(t *testing.T, raw string) kernel.CPF {
	t.Helper()
	cpf, err := kernel.NewCPF(raw)
	require.NoError(t, err)
	return cpf
}

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

func newStoredUser(t *testing.T, cpf string, role access.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Stored User", mustCPF(t, cpf), "stored-hash", role)
	require.NoError(t, err)
	return u
}

func newStoredRecipient(t *testing.T, cpf string) *recipient.Recipient {
	t.Helper()
	r, err := recipient.NewRecipient(
		kernel.NewUUID(), "Maria", mustCPF(t, cpf), "Praca da Se, 1", mustLocation(t, -23.55052, -46.633308))
	require.NoError(t, err)
	return r
}

func newStoredDelivery(
	t *testing.T,
	status delivery.Status,
	courierID *kernel.UUID,
	photoURL *string,
) *delivery.Delivery {
	t.Helper()
	now := time.Now().UTC()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), courierID, status, photoURL, now, now)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T {
	return &v
}
