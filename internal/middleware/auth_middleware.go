package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	clubauth "github.com/devkip/clubhub/internal/app/auth"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthMiddleware guards routes with JWT validation and the admin allow-list
type AuthMiddleware struct {
	jwtService *auth.JWTService
	allowList  *clubauth.AllowList
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, allowList *clubauth.AllowList) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		allowList:  allowList,
	}
}

// JWTAuth validates the bearer token and puts the caller's identity on the
// request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.authenticate(c)
		if !ok {
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// OptionalJWTAuth puts the caller's identity on the request context when a
// valid bearer token is present, and lets the request through anonymously
// otherwise. Handlers behind it decide what an anonymous caller sees; the
// middleware itself never rejects.
func (m *AuthMiddleware) OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// AdminRequired validates the token and then checks the caller's email
// against the allow-list. A valid token without allow-list membership is a
// 403, not a 401: the caller is known, just not privileged.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.authenticate(c)
		if !ok {
			return
		}

		if !m.allowList.IsAdmin(claims.Email) {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Admin access required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("Authorization header missing")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return nil, false
	}

	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("Invalid authorization header format")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return nil, false
	}

	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		code := dto.ErrorCodeInvalidToken
		details := "Invalid token"
		if errors.Is(err, auth.ErrExpiredToken) {
			code = dto.ErrorCodeExpiredToken
			details = "Token has expired"
		}
		detail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return nil, false
	}

	return claims, true
}

// CurrentUserID returns the authenticated user's id from the context
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// CurrentEmail returns the authenticated user's email from the context
func CurrentEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
