package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop-back/config"
	"eshop-back/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42, "alice@example.com", "User")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
	assert.NotEmpty(t, claims.ID, "every token carries a jti")
	assert.Equal(t, config.JWTIssuer(), claims.Issuer)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, config.TokenTTL.Seconds(), ttl.Seconds(), 5)
}

func TestTamperedTokenIsRejected(t *testing.T) {
	token, err := auth.GenerateToken(1, "a@b.co", "User")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = auth.ValidateToken(tampered)
	assert.Error(t, err)
}

func signWith(t *testing.T, claims auth.Claims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func baseClaims() auth.Claims {
	now := time.Now()
	return auth.Claims{
		Email: "a@b.co",
		Role:  "User",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    config.JWTIssuer(),
			Audience:  jwt.ClaimStrings{config.JWTAudience()},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	claims := baseClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	token := signWith(t, claims, jwt.SigningMethodHS256, []byte(config.JWTSecret()))
	_, err := auth.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenWithoutExpiryIsRejected(t *testing.T) {
	claims := baseClaims()
	claims.ExpiresAt = nil

	token := signWith(t, claims, jwt.SigningMethodHS256, []byte(config.JWTSecret()))
	_, err := auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestWrongIssuerIsRejected(t *testing.T) {
	claims := baseClaims()
	claims.Issuer = "someone-else"

	token := signWith(t, claims, jwt.SigningMethodHS256, []byte(config.JWTSecret()))
	_, err := auth.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestWrongAudienceIsRejected(t *testing.T) {
	claims := baseClaims()
	claims.Audience = jwt.ClaimStrings{"another-app"}

	token := signWith(t, claims, jwt.SigningMethodHS256, []byte(config.JWTSecret()))
	_, err := auth.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestUnexpectedAlgorithmIsRejected(t *testing.T) {
	// alg:none style downgrade must not validate.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims()).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, auth.CheckPassword(hash, "secret123"))
	assert.False(t, auth.CheckPassword(hash, "secret124"))
}
