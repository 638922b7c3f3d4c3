package appointment

import (
	"context"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	status "github.com/gabrielbarbershop/booking-api/internal/domain/appointment"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/infra/cache"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	cache SlotCacheInvalidator
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	cache SlotCacheInvalidator,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute moves an appointment through the status machine. Cancelling
// re-opens the slot the appointment had claimed, if any.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	to status.Status,
) (*models.Appointment, error) {

	var updated *models.Appointment
	var releasedDay string

	err := uc.repo.InTx(ctx, func(r domain.Repository) error {
		ap, err := r.GetAppointmentByID(ctx, id)
		if err != nil {
			return err
		}

		if err := status.CanTransition(status.Status(ap.Status), to); err != nil {
			return err
		}

		if to == status.StatusCancelled {
			slot, err := r.GetSlotAt(ctx, ap.ScheduledAt)
			switch {
			case err == nil:
				if slot.Booked {
					slot.Booked = false
					slot.Available = true
					if err := r.SaveSlot(ctx, slot); err != nil {
						return err
					}
					releasedDay = slot.Timestamp.Format(cache.DayFormat)
				}
			case httperr.KindOf(err) == httperr.KindNotFound:
				// nothing to release
			default:
				return err
			}
		}

		ap.Status = string(to)
		if err := r.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if releasedDay != "" && uc.cache != nil {
		uc.cache.InvalidateDay(ctx, releasedDay)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]string{"status": string(to)},
	})

	return updated, nil
}
