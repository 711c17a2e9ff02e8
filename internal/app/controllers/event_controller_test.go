package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clubauth "github.com/devkip/clubhub/internal/app/auth"
	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/middleware"
	"github.com/devkip/clubhub/internal/pkg/auth"
)

// stubEventService answers CheckRegistration from a fixed set of holders
type stubEventService struct {
	registeredUsers map[int64]bool
}

func (s *stubEventService) List(context.Context) ([]dto.EventResponse, error) { return nil, nil }
func (s *stubEventService) Get(context.Context, string) (*models.Event, error) {
	return nil, nil
}
func (s *stubEventService) Create(context.Context, *dto.CreateEventRequest) (*models.Event, error) {
	return nil, nil
}
func (s *stubEventService) Update(context.Context, string, *dto.UpdateEventRequest) (*models.Event, error) {
	return nil, nil
}
func (s *stubEventService) Delete(context.Context, string) error { return nil }
func (s *stubEventService) Register(context.Context, string, *models.User) (*models.Registration, error) {
	return nil, nil
}
func (s *stubEventService) CheckRegistration(_ context.Context, _ string, userID int64) *dto.CheckRegistrationResponse {
	return &dto.CheckRegistrationResponse{IsRegistered: s.registeredUsers[userID]}
}
func (s *stubEventService) ListRegistrations(context.Context, string) ([]models.Registration, error) {
	return nil, nil
}

func TestCheckRegistrationWithOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "clubhub.test",
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtService, clubauth.NewAllowList(nil))
	controller := NewEventController(&stubEventService{registeredUsers: map[int64]bool{9: true}}, zerolog.Nop())

	router := gin.New()
	router.GET("/events/:id/registration", authMiddleware.OptionalJWTAuth(), controller.CheckRegistration)

	check := func(t *testing.T, header string) (int, string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/events/evt-1/registration", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder.Code, recorder.Body.String()
	}

	t.Run("anonymous caller gets a calm false", func(t *testing.T) {
		status, body := check(t, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"isRegistered":false`)
	})

	t.Run("garbage token is treated as anonymous", func(t *testing.T) {
		status, body := check(t, "Bearer not-a-token")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"isRegistered":false`)
	})

	t.Run("valid token resolves the caller's registration", func(t *testing.T) {
		accessToken, _, _, _, err := jwtService.GenerateTokenPair(9, "grace@club.test")
		require.NoError(t, err)

		status, body := check(t, "Bearer "+accessToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"isRegistered":true`)
	})
}
