package kernel

import (
	"fmt"

	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value or nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies users, recipients, deliveries and notifications.
// It wraps github.com/google/uuid; the nil UUID is never a valid identifier.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString reads a token subject or other textual id.
func UUIDFromString(s string) (UUID, error) {
	return wrapUUID(uuid.Parse(s))
}

// UUIDFromBytes reads a 16-byte database column.
func UUIDFromBytes(b []byte) (UUID, error) {
	return wrapUUID(uuid.FromBytes(b))
}

func wrapUUID(id uuid.UUID, err error) (UUID, error) {
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	if id == uuid.Nil {
		return UUID{}, ErrUUIDIsNotConstructed
	}
	return UUID{id: id}, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
