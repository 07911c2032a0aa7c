// Package validate provides shared validation functions for user input
// collected by forms and flags.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hay-kot/criterio"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

var (
	ErrRequired         = errors.New("is required")
	ErrInvalidEmail     = errors.New("must be a valid email address")
	ErrPasswordTooShort = fmt.Errorf("must be at least %d characters", MinPasswordLength)
	ErrNegativePrice    = errors.New("cannot be negative")
)

// Required validates a value is non-empty after trimming whitespace.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// Email performs a shallow shape check on an email address.
func Email(s string) error {
	if err := Required(s); err != nil {
		return err
	}
	local, domain, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok || local == "" || domain == "" {
		return ErrInvalidEmail
	}
	return nil
}

// Password validates password length.
func Password(s string) error {
	if s == "" {
		return ErrRequired
	}
	if len(s) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Price validates a price is a finite, non-negative number.
func Price(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return errors.New("must be a number")
	}
	if p < 0 {
		return ErrNegativePrice
	}
	return nil
}

// SignUp validates the sign-up fields. Failures are reported as
// criterio.FieldErrors keyed by field name.
func SignUp(name, email, password string) error {
	return criterio.ValidateStruct(
		criterio.Run("name", name, Required),
		criterio.Run("email", email, Email),
		criterio.Run("password", password, Password),
	)
}

// Product validates the editable product fields.
func Product(name string, price float64) error {
	return criterio.ValidateStruct(
		criterio.Run("name", name, Required),
		criterio.Run("price", price, Price),
	)
}

// HasRequired reports whether err carries a field error for a missing value.
func HasRequired(err error) bool {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Is(err, ErrRequired)
	}
	for _, fe := range fieldErrs {
		if errors.Is(fe.Err, ErrRequired) {
			return true
		}
	}
	return false
}
