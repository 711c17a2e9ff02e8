package dto

// RegisterRequest is the payload for password-based signup
type RegisterRequest struct {
	Name      string `json:"name" binding:"required" example:"Jane Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane@club.org"`
	Password  string `json:"password" binding:"required" example:"hunter2hunter2"`
	StudentID string `json:"studentId" binding:"required" example:"BSC/1234/21"`
}

// RegisterResponse confirms an initiated registration
type RegisterResponse struct {
	UserID  int64  `json:"userId" example:"1"`
	Email   string `json:"email" example:"jane@club.org"`
	Message string `json:"message" example:"Registration successful. Check your email for a confirmation link."`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ResendVerificationRequest asks for a new confirmation email
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordRequest starts the password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password reset flow
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
