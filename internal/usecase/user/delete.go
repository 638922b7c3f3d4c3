package user

import (
	"context"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(repo domain.Repository, audit *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{repo: repo, audit: audit}
}

// Execute removes a user. A professional with pending appointments cannot
// be removed; otherwise every appointment that references them is
// unlinked first, so the delete never violates the foreign key. Guard,
// unlink and delete share one transaction.
func (uc *DeleteUser) Execute(ctx context.Context, id uint) error {
	err := uc.repo.InTx(ctx, func(r domain.Repository) error {
		if _, err := r.GetUserByID(ctx, id); err != nil {
			return err
		}

		pending, err := r.HasPendingForProfessional(ctx, id)
		if err != nil {
			return err
		}
		if pending {
			return httperr.ErrConflict("professional_has_pending_appointments")
		}

		apps, err := r.ListAppointmentsByProfessional(ctx, id)
		if err != nil {
			return err
		}
		for i := range apps {
			apps[i].ProfessionalID = nil
			apps[i].Professional = nil
			if err := r.SaveAppointment(ctx, &apps[i]); err != nil {
				return err
			}
		}

		return r.DeleteUser(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	return nil
}
