package dto

import "github.com/campushq/mentorhub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request. The optional
// profile fields apply to the matching role and are ignored otherwise.
type RegisterRequest struct {
	Email           string          `json:"email" binding:"required,email"`
	Password        string          `json:"password" binding:"required,min=8"`
	ConfirmPassword string          `json:"confirmPassword" binding:"required"`
	FirstName       string          `json:"firstName" binding:"required"`
	LastName        string          `json:"lastName" binding:"required"`
	Role            models.RoleType `json:"role" binding:"required"`

	// Mentor profile fields
	Room       string `json:"room,omitempty"`
	Department string `json:"department,omitempty"`
	Background string `json:"background,omitempty"`
	Position   string `json:"position,omitempty"`

	// Mentee profile fields
	Course string `json:"course,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest carries the refresh token to revoke
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse represents successful authentication response. Profile
// carries the user and their role-specific profile section.
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
