// Package catalog holds the product and account types shared by the board
// services and the event bus.
package catalog

import (
	"errors"
	"strings"
	"time"
)

// TempIDPrefix marks a product that has not been persisted yet.
const TempIDPrefix = "temp_"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Product is a catalog entry shown on the dashboard.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsNew reports whether saving p should create rather than update.
func (p Product) IsNew() bool {
	return p.ID == "" || strings.HasPrefix(p.ID, TempIDPrefix)
}

// User is a registered account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
