package dto

import (
	"time"

	"github.com/idealconvent/campus-api/internal/models"
)

// LoginRequest carries console credentials. Role and campus must match the
// stored account exactly, not just the email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=1,max=255"`
	Role     string `json:"role" validate:"required,oneof=Admin Accountant Teacher"`
	Campus   string `json:"campus" validate:"required,max=64"`
}

// SignupRequest describes a new console account.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=4,max=255"`
	Role     string `json:"role" validate:"required,oneof=Admin Accountant Teacher"`
	Campus   string `json:"campus" validate:"required,max=64"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// ResetPasswordRequest completes a password reset with the issued token.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Token       string `json:"token" validate:"required,max=64"`
	NewPassword string `json:"new_password" validate:"required,min=4,max=255"`
}

// UpdateProfileRequest edits the caller's own account.
type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"omitempty,min=2,max=255"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url,max=512"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,max=255"`
	NewPassword     string `json:"new_password" validate:"required,min=4,max=255"`
}

// UserResponse is the serialized representation of a console account.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Campus    string    `json:"campus"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse bundles the issued token with the account it belongs to.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ForgotPasswordResponse returns the reset token directly; there is no mail
// delivery in this deployment.
type ForgotPasswordResponse struct {
	Token string `json:"token"`
}

// NewUserResponse converts a model into a DTO.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Campus:    string(user.Campus),
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
