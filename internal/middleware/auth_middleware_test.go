package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clubauth "github.com/devkip/clubhub/internal/app/auth"
	"github.com/devkip/clubhub/internal/pkg/auth"
)

func newTestRouter(t *testing.T, adminEmails []string) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "clubhub.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService, clubauth.NewAllowList(adminEmails))

	router := gin.New()
	router.GET("/member", authMiddleware.JWTAuth(), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	router.GET("/admin", authMiddleware.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, userID int64, email string) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(userID, email)
	require.NoError(t, err)
	return accessToken
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/member", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, 7, "member@club.test"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAdminRequiredDistinguishes401From403(t *testing.T) {
	router, jwtService := newTestRouter(t, []string{"boss@club.test"})

	// no token at all: the caller is unknown
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// valid token, email off the allow-list: known but not privileged
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, 7, "member@club.test"))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// allow-listed email, case-insensitively
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, 8, "Boss@Club.Test"))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
