// Package recipient implements the Recipient aggregate: the person a delivery is
// addressed to, identified by cpf and located by address and coordinates.
package recipient

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient or RestoreRecipient")

type Recipient struct {
	id       kernel.UUID
	name     string
	cpf      kernel.CPF
	address  string
	location kernel.Location
	guard    guard.ConstructorGuard
}

func NewRecipient(
	id kernel.UUID,
	name string,
	cpf kernel.CPF,
	address string,
	location kernel.Location,
) (*Recipient, error) {
	return RestoreRecipient(id, name, cpf, address, location)
}

func RestoreRecipient(
	id kernel.UUID,
	name string,
	cpf kernel.CPF,
	address string,
	location kernel.Location,
) (*Recipient, error) {
	r := &Recipient{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		r.setName(name),
		r.setCPF(cpf),
		r.setAddress(address),
		r.setLocation(location),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

func (r *Recipient) ID() kernel.UUID           { return r.id }
func (r *Recipient) Name() string              { return r.name }
func (r *Recipient) CPF() kernel.CPF           { return r.cpf }
func (r *Recipient) Address() string           { return r.address }
func (r *Recipient) Location() kernel.Location { return r.location }

func (r *Recipient) Rename(name string) error {
	return r.setName(name)
}

func (r *Recipient) ChangeCPF(cpf kernel.CPF) error {
	return r.setCPF(cpf)
}

// Relocate changes the postal address and coordinates together; either may be kept
// by passing the current value.
func (r *Recipient) Relocate(address string, location kernel.Location) error {
	return errors.Join(r.setAddress(address), r.setLocation(location))
}

func (r *Recipient) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setCPF(cpf kernel.CPF) error {
	if err := cpf.Validate(); err != nil {
		return err
	}
	r.cpf = cpf
	return nil
}

func (r *Recipient) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Recipient) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
