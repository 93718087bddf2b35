// Package user holds the operator accounts that sign in to the system.
package user

import (
	"fmt"
	"strings"

	"extinsia/internal/shared/authorization"
	"extinsia/internal/shared/textutil"
)

type User struct {
	id           uint
	code         string
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
}

// NewUser builds an account from an already-hashed password. Password
// policy and hashing live in the application/auth layers.
func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	name = textutil.Clean(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	email = textutil.NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructUser(id uint, code, name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("user code is required")
	}

	return &User{
		id:           id,
		code:         code,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Code() string                 { return u.code }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetCode(code string) error {
	if len(u.code) > 0 {
		return fmt.Errorf("user code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("user code cannot be empty")
	}
	u.code = code
	return nil
}

// UpdateProfile changes name and email.
func (u *User) UpdateProfile(name, email string) error {
	name = textutil.Clean(name)
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}

	email = textutil.NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	u.name = name
	u.email = email
	return nil
}

// ChangePasswordHash swaps in a new hash.
func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	return nil
}

func validateEmail(email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email")
	}
	if !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("invalid email")
	}
	return nil
}
