package user_test

import (
	"testing"
	"time"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCPF(t *testing.T, raw string) kernel.CPF {
	t.Helper()
	cpf, err := kernel.NewCPF(raw)
	require.NoError(t, err)
	return cpf
}

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cpf := mustCPF(t, "12345678900")

		u, err := user.NewUser(kernel.NewUUID(), " Ana ", cpf, "$2a$hash", access.RoleCourier)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		require.NoError(t, u.ID().Validate())
		assert.Equal(t, "Ana", u.Name())
		assert.True(t, u.CPF().IsEqual(cpf))
		assert.Equal(t, "$2a$hash", u.PasswordHash())
		assert.Equal(t, access.RoleCourier, u.Role())
		assert.WithinDuration(t, time.Now(), u.CreatedAt(), time.Minute)
	})

	t.Run("collects every violation", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "", kernel.CPF{}, "", access.RoleUnknown)

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, kernel.ErrCPFIsNotConstructed)
	})
}

func TestRestoreUser(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	u, err := user.RestoreUser(id, "Admin", mustCPF(t, "11122233344"), "hash", access.RoleAdmin, createdAt)

	require.NoError(t, err)
	assert.True(t, u.ID().IsEqual(id))
	assert.Equal(t, createdAt, u.CreatedAt())

	_, err = user.RestoreUser(kernel.UUID{}, "Admin", mustCPF(t, "11122233344"), "hash", access.RoleAdmin, createdAt)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUser_Mutators(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Ana", mustCPF(t, "12345678900"), "old", access.RoleCourier)
	require.NoError(t, err)

	require.NoError(t, u.Rename("Ana Maria"))
	require.NoError(t, u.ChangeCPF(mustCPF(t, "98765432100")))
	require.NoError(t, u.ChangePasswordHash("new"))
	require.NoError(t, u.ChangeRole(access.RoleAdmin))

	assert.Equal(t, "Ana Maria", u.Name())
	assert.Equal(t, "98765432100", u.CPF().String())
	assert.Equal(t, "new", u.PasswordHash())
	assert.Equal(t, access.RoleAdmin, u.Role())

	require.Error(t, u.Rename(" "))
	require.Error(t, u.ChangePasswordHash(""))
	require.Error(t, u.ChangeRole(access.RoleUnknown))
	assert.Equal(t, "Ana Maria", u.Name())
	assert.Equal(t, access.RoleAdmin, u.Role())
}

func TestUser_Validate(t *testing.T) {
	var u *user.User
	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	require.ErrorIs(t, (&user.User{}).Validate(), user.ErrUserIsNotConstructed)
}
