package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

const testSecret = "unit-test-secret"

func TestGenerateAndValidate(t *testing.T) {
	svc := New(testSecret)

	tokenStr, err := svc.Generate(42, "joao@example.com", "Cliente")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Cliente", claims.Role)
	assert.Equal(t, "joao@example.com", claims.Subject)
}

func TestGenerate_ExpiryIsTwoHours(t *testing.T) {
	svc := New(testSecret)

	tokenStr, err := svc.Generate(1, "joao@example.com", "Cliente")
	require.NoError(t, err)

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TTL, lifetime)
}

func TestValidate_WrongSecret(t *testing.T) {
	tokenStr, err := New("other-secret").Generate(1, "joao@example.com", "Cliente")
	require.NoError(t, err)

	_, err = New(testSecret).Validate(tokenStr)
	require.Error(t, err)
	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))
}

func TestValidate_ExpiredToken(t *testing.T) {
	issued := time.Now().Add(-3 * time.Hour)
	claims := Claims{
		UserID: 1,
		Role:   "Cliente",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "joao@example.com",
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(TTL)),
		},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = New(testSecret).Validate(tokenStr)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

func TestValidate_RejectsNonHMAC(t *testing.T) {
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New(testSecret).Validate(tokenStr)
	require.Error(t, err)
	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))
}

func TestValidateForSubject(t *testing.T) {
	svc := New(testSecret)

	tokenStr, err := svc.Generate(1, "joao@example.com", "Cliente")
	require.NoError(t, err)

	_, err = svc.ValidateForSubject(tokenStr, "joao@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateForSubject(tokenStr, "maria@example.com")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "token_subject_mismatch"))
}
