package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
	"github.com/devkip/clubhub/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Every controller
// funnels its service errors through here so status codes and the error
// envelope stay uniform.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBlogNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrPhotoNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, "Already registered for this event"))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Admin access required"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password"))

	case errors.Is(err, apperrors.ErrEmailNotVerified):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeEmailNotVerified, "Email address not verified"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))

	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"))

	case errors.Is(err, apperrors.ErrInvalidEmail):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidEmail, "Invalid email address").WithField("email"))

	case errors.Is(err, apperrors.ErrInvalidPassword):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, "Password does not meet requirements").WithField("password"))

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.NewErrorResponse(detail))
}
