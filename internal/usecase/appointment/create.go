package appointment

import (
	"context"
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	status "github.com/gabrielbarbershop/booking-api/internal/domain/appointment"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/infra/cache"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// SlotCacheInvalidator drops the cached availability listing of one day.
// Booking and cancelling flip slot rows, so the affected day must not be
// served stale.
type SlotCacheInvalidator interface {
	InvalidateDay(ctx context.Context, day string)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ProfessionalID *uint
	ServiceID      uint
	ScheduledAt    time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	cache SlotCacheInvalidator
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	cache SlotCacheInvalidator,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	var created *models.Appointment
	var bookedDay string

	err := uc.repo.InTx(ctx, func(r domain.Repository) error {
		client, err := r.GetUserByID(ctx, in.ClientID)
		if err != nil {
			return err
		}

		service, err := r.GetServiceByID(ctx, in.ServiceID)
		if err != nil {
			return err
		}

		if in.ProfessionalID != nil {
			if _, err := r.GetUserByID(ctx, *in.ProfessionalID); err != nil {
				return err
			}

			busy, err := r.HasPendingAt(ctx, *in.ProfessionalID, in.ScheduledAt)
			if err != nil {
				return err
			}
			if busy {
				return httperr.ErrConflict("professional_already_booked")
			}
		}

		// A managed slot at this instant must be claimed; when none
		// exists the time is taken as caller-managed.
		slot, err := r.GetSlotAt(ctx, in.ScheduledAt)
		switch {
		case err == nil:
			if !slot.Available || slot.Booked {
				return httperr.ErrConflict("slot_unavailable")
			}
			slot.Available = false
			slot.Booked = true
			if err := r.SaveSlot(ctx, slot); err != nil {
				return err
			}
			bookedDay = slot.Timestamp.Format(cache.DayFormat)
		case httperr.KindOf(err) == httperr.KindNotFound:
			// no slot row for this time
		default:
			return err
		}

		ap := &models.Appointment{
			ClientID:       client.ID,
			ProfessionalID: in.ProfessionalID,
			ServiceID:      service.ID,
			ScheduledAt:    in.ScheduledAt,
			Status:         string(status.InitialStatus()),
		}

		if err := r.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if bookedDay != "" && uc.cache != nil {
		uc.cache.InvalidateDay(ctx, bookedDay)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &created.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
