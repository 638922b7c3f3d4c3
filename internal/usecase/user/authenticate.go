package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type AuthenticateUser struct {
	repo domain.Repository
}

func NewAuthenticateUser(repo domain.Repository) *AuthenticateUser {
	return &AuthenticateUser{repo: repo}
}

// Execute verifies credentials. Unknown email and wrong password produce
// the same error so callers cannot tell which one failed.
func (uc *AuthenticateUser) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return nil, httperr.ErrUnauthorized("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrUnauthorized("invalid_credentials")
	}

	return u, nil
}
