package kernel

import (
	"strings"

	"fastfeet/internal/pkg/errs"
)

// CPFLength is the number of digits of a Brazilian natural-person tax identifier.
const CPFLength = 11

// ErrCPFIsNotConstructed is returned when a zero-value CPF is used.
var ErrCPFIsNotConstructed = errs.NewValueIsRequiredError("cpf must be created via NewCPF")

// CPF is the natural key of users and recipients. It is stored as eleven digits;
// the usual punctuation ("123.456.789-00") is accepted on input and stripped.
// Check digits are not verified.
type CPF struct {
	digits string
}

// NewCPF normalizes raw and requires exactly CPFLength digits.
func NewCPF(raw string) (CPF, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CPF{}, errs.NewValueIsRequiredError("cpf")
	}

	digits := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return -1
		}
		return r
	}, trimmed)

	if len(digits) != CPFLength {
		return CPF{}, errs.NewValueIsInvalidError("cpf must have 11 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return CPF{}, errs.NewValueIsInvalidError("cpf must contain only digits")
		}
	}

	return CPF{digits: digits}, nil
}

func (c CPF) String() string {
	return c.digits
}

func (c CPF) IsEqual(other CPF) bool {
	return c.digits == other.digits
}

func (c CPF) Validate() error {
	if c.digits == "" {
		return ErrCPFIsNotConstructed
	}
	return nil
}
