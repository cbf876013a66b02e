package access

import (
	"fmt"
	"strings"

	"fastfeet/internal/pkg/errs"
)

type Role int

const (
	// RoleUnknown catches uninitialized values.
	RoleUnknown Role = iota
	RoleAdmin
	RoleCourier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleAdmin:   "ADMIN",
		RoleCourier: "COURIER",
	}
}

// ParseRole accepts ADMIN and COURIER case-insensitively. ENTREGADOR is kept as an
// alias of COURIER for clients of the Portuguese API.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin, nil
	case "COURIER", "ENTREGADOR":
		return RoleCourier, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleCourier {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
