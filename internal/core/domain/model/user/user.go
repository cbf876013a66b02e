// Package user implements the User aggregate: administrators and couriers who
// authenticate against the service. The password is held only as a hash.
package user

import (
	"errors"
	"strings"
	"time"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

type User struct {
	id           kernel.UUID
	name         string
	cpf          kernel.CPF
	passwordHash string
	role         access.Role
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

func NewUser(id kernel.UUID, name string, cpf kernel.CPF, passwordHash string, role access.Role) (*User, error) {
	return RestoreUser(id, name, cpf, passwordHash, role, time.Now().UTC())
}

func RestoreUser(
	id kernel.UUID,
	name string,
	cpf kernel.CPF,
	passwordHash string,
	role access.Role,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		id:        id,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		u.setName(name),
		u.setCPF(cpf),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) CPF() kernel.CPF      { return u.cpf }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() access.Role    { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) Rename(name string) error {
	return u.setName(name)
}

func (u *User) ChangeCPF(cpf kernel.CPF) error {
	return u.setCPF(cpf)
}

// ChangePasswordHash replaces the stored hash. Hashing happens outside the domain.
func (u *User) ChangePasswordHash(hash string) error {
	return u.setPasswordHash(hash)
}

func (u *User) ChangeRole(role access.Role) error {
	return u.setRole(role)
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setCPF(cpf kernel.CPF) error {
	if err := cpf.Validate(); err != nil {
		return err
	}
	u.cpf = cpf
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
