// Package dto carries the user account representations returned to
// callers. Password hashes never leave the application layer.
package dto

import (
	"time"

	"extinsia/internal/domain/user"
)

type UserDTO struct {
	Code  string `json:"codigo"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

func FromUser(u *user.User) *UserDTO {
	return &UserDTO{
		Code:  u.Code(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

func FromUsers(users []*user.User) []*UserDTO {
	dtos := make([]*UserDTO, len(users))
	for i, u := range users {
		dtos[i] = FromUser(u)
	}
	return dtos
}

type LoginResponse struct {
	User         *UserDTO  `json:"usuario"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
