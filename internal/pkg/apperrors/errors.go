package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrEmailNotVerified   = errors.New("email not verified")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Blog errors
var (
	ErrBlogNotFound = errors.New("blog post not found")
)

// Event errors
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
)

// Profile errors
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// Gallery errors
var (
	ErrPhotoNotFound = errors.New("photo not found")
)
