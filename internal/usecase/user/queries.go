package user

import (
	"context"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

func (q *Queries) List(ctx context.Context) ([]models.User, error) {
	return q.repo.ListUsers(ctx)
}

func (q *Queries) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return q.repo.GetUserByID(ctx, id)
}

func (q *Queries) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return q.repo.GetUserByEmail(ctx, email)
}
