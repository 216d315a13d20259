package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop-back/app/models"
	"eshop-back/config"
	"eshop-back/pkg/auth"
)

// expiredToken signs a token whose expiry is already in the past.
func expiredToken(t *testing.T) string {
	t.Helper()

	now := time.Now()
	claims := auth.Claims{
		Email: "alice@example.com",
		Role:  models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    config.JWTIssuer(),
			Audience:  jwt.ClaimStrings{config.JWTAudience()},
			IssuedAt:  jwt.NewNumericDate(now.Add(-3 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.JWTSecret()))
	require.NoError(t, err)
	return token
}

func TestExpiredTokenIsRejected(t *testing.T) {
	h, _ := newTestApp(t)

	w := do(t, h, http.MethodGet, "/api/Order", expiredToken(t), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	h, _ := newTestApp(t)

	req := do(t, h, http.MethodGet, "/api/Order", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}

func TestFreshTokenWithinTTLIsAccepted(t *testing.T) {
	h, _ := newTestApp(t)

	token := registerUser(t, h, "alice@example.com")
	w := do(t, h, http.MethodGet, "/api/Order", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
