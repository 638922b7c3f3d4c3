package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Name     string
	Email    string
	CPF      string
	Password string
	Phone    string
	PhotoURL string

	// Zero means "not supplied": the default client type is attached.
	UserTypeID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	repo domain.Repository
}

func NewCreateUser(repo domain.Repository) *CreateUser {
	return &CreateUser{repo: repo}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	if !validators.IsCPF(in.CPF) {
		return nil, httperr.ErrInvalidArgument("invalid_cpf")
	}

	typeID := in.UserTypeID
	if typeID == 0 {
		typeID = models.UserTypeClientID
	}

	userType, err := uc.repo.GetUserTypeByID(ctx, typeID)
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
