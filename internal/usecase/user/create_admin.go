package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/validators"
)

// CreateUserAsAdmin never infers a type: the caller must name one and it
// must exist.
type CreateUserAsAdmin struct {
	repo domain.Repository
}

func NewCreateUserAsAdmin(repo domain.Repository) *CreateUserAsAdmin {
	return &CreateUserAsAdmin{repo: repo}
}

func (uc *CreateUserAsAdmin) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	if in.UserTypeID == 0 {
		return nil, httperr.ErrInvalidArgument("user_type_required")
	}

	if !validators.IsCPF(in.CPF) {
		return nil, httperr.ErrInvalidArgument("invalid_cpf")
	}

	userType, err := uc.repo.GetUserTypeByID(ctx, in.UserTypeID)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		CPF:          in.CPF,
		PasswordHash: string(hashed),
		Phone:        in.Phone,
		PhotoURL:     in.PhotoURL,
		UserTypeID:   userType.ID,
		UserType:     *userType,
	}

	if err := uc.repo.SaveUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
