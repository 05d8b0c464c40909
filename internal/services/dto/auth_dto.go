package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse acknowledges the first factor. DebugOTP is populated only
// when the debug_otp config flag is on; normal delivery is out of band.
type LoginResponse struct {
	Message  string `json:"message"`
	DebugOTP string `json:"debugOtp,omitempty"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"otp" validate:"required,len=6,numeric"`
}

type AdminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Mobile    string    `json:"mobile,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type TokenResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Mobile   string `json:"mobile" validate:"omitempty,min=7,max=20"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Mobile string `json:"mobile" validate:"omitempty,min=7,max=20"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries the new password; the reset token itself
// travels in the URL path.
type ResetPasswordRequest struct {
	Token       string `json:"-"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}
