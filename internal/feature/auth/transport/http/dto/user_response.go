package dto

import (
	"time"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// UserRes is the client-facing user projection.
// The password hash is intentionally absent and never serialized.
type UserRes struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserResponse is the response envelope for /register and /login.
// Exactly one of Errors or the success fields is populated.
type UserResponse struct {
	Errors       []usecase.FieldError `json:"errors,omitempty"`
	User         *UserRes             `json:"user,omitempty"`
	AccessToken  string               `json:"accessToken,omitempty"`
	RefreshToken string               `json:"refreshToken,omitempty"`
}

// UserResFromEntity converts a domain user to its client-facing projection.
func UserResFromEntity(u *entity.User) *UserRes {
	return &UserRes{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
