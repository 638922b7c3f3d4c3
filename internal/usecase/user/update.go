package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type UpdateUserInput struct {
	Name     string
	Email    string
	CPF      string
	Phone    string
	PhotoURL string

	// Empty password means "keep the stored one".
	Password string

	UserTypeID uint
}

type UpdateUser struct {
	repo domain.Repository
}

func NewUpdateUser(repo domain.Repository) *UpdateUser {
	return &UpdateUser{repo: repo}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	id uint,
	in UpdateUserInput,
) (*models.User, error) {

	if in.UserTypeID == 0 {
		return nil, httperr.ErrInvalidArgument("user_type_required")
	}

	var updated *models.User
	err := uc.repo.InTx(ctx, func(r domain.Repository) error {
		existing, err := r.GetUserByID(ctx, id)
		if err != nil {
			return err
		}

		userType, err := r.GetUserTypeByID(ctx, in.UserTypeID)
		if err != nil {
			return err
		}

		existing.Name = in.Name
		existing.Email = in.Email
		existing.CPF = in.CPF
		existing.Phone = in.Phone
		existing.PhotoURL = in.PhotoURL
		existing.UserTypeID = userType.ID
		existing.UserType = *userType

		if in.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			existing.PasswordHash = string(hashed)
		}

		if err := r.SaveUser(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
