package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

// Tokens live for exactly two hours.
const TTL = 2 * time.Hour

type Service struct {
	secret string
}

func New(secret string) *Service {
	return &Service{secret: secret}
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate issues an HS256 token with the user's email as subject.
func (s *Service) Generate(userID uint, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

func (s *Service) Validate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(s.secret), nil
	})
	if err != nil || !t.Valid {
		return nil, httperr.ErrUnauthorized("invalid_token")
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return nil, httperr.ErrUnauthorized("invalid_token_claims")
	}
	return claims, nil
}

// ValidateForSubject additionally binds the token to one identity: a
// valid token for someone else is still rejected.
func (s *Service) ValidateForSubject(tokenStr, email string) (*Claims, error) {
	claims, err := s.Validate(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Subject != email {
		return nil, httperr.ErrUnauthorized("token_subject_mismatch")
	}
	return claims, nil
}
