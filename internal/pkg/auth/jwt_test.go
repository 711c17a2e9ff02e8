package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "clubhub.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	service := newTestJWTService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := service.GenerateTokenPair(42, "ada@club.test")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := service.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada@club.test", claims.Email)
	assert.Equal(t, "clubhub.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	accessToken, _, _, _, err := service.GenerateTokenPair(1, "x@y.z")
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestJWTService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour})

	accessToken, _, _, _, err := service.GenerateTokenPair(1, "x@y.z")
	require.NoError(t, err)

	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	raw, err := ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", raw)
}
