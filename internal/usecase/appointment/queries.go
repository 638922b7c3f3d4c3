package appointment

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

func (q *Queries) List(ctx context.Context) ([]models.Appointment, error) {
	return q.repo.ListAppointments(ctx)
}

func (q *Queries) ListByClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	return q.repo.ListAppointmentsByClient(ctx, clientID)
}

func (q *Queries) Delete(ctx context.Context, id uint) error {
	return q.repo.DeleteAppointment(ctx, id)
}
