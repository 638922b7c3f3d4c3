package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	status "github.com/gabrielbarbershop/booking-api/internal/domain/appointment"
	"github.com/gabrielbarbershop/booking-api/internal/domain/booking/bookingtest"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

var slotTime = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

func seededRepo() *bookingtest.FakeRepo {
	repo := bookingtest.NewFakeRepo()
	repo.Users[1] = &models.User{ID: 1, Name: "Cliente", Email: "cliente@example.com"}
	repo.Users[2] = &models.User{ID: 2, Name: "Profissional", Email: "pro@example.com"}
	repo.Services[3] = &models.Service{ID: 3, Name: "Corte", Price: 45, DurationMin: 30}
	return repo
}

func TestCreateAppointment_StatusForcedToPending(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:    1,
		ServiceID:   3,
		ScheduledAt: slotTime,
	})
	require.NoError(t, err)
	assert.Equal(t, string(status.StatusPending), ap.Status)
	assert.Nil(t, ap.ProfessionalID)
}

func TestCreateAppointment_UnknownClientOrService(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 404, ServiceID: 3, ScheduledAt: slotTime,
	})
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 404, ScheduledAt: slotTime,
	})
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestCreateAppointment_ClaimsMatchingSlot(t *testing.T) {
	repo := seededRepo()
	repo.Slots[10] = &models.AvailableSlot{ID: 10, Timestamp: slotTime, Available: true}
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)

	assert.True(t, repo.Slots[10].Booked)
	assert.False(t, repo.Slots[10].Available)
}

func TestCreateAppointment_SlotAlreadyBooked(t *testing.T) {
	repo := seededRepo()
	repo.Slots[10] = &models.AvailableSlot{ID: 10, Timestamp: slotTime, Available: false, Booked: true}
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateAppointment_ProfessionalDoubleBooking(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	profID := uint(2)
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ProfessionalID: &profID, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ProfessionalID: &profID, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "professional_already_booked"))
}

type recordingInvalidator struct {
	days []string
}

func (r *recordingInvalidator) InvalidateDay(_ context.Context, day string) {
	r.days = append(r.days, day)
}

func TestCreateAppointment_BookingInvalidatesDayCache(t *testing.T) {
	repo := seededRepo()
	repo.Slots[10] = &models.AvailableSlot{ID: 10, Timestamp: slotTime, Available: true}
	inv := &recordingInvalidator{}
	uc := NewCreateAppointment(repo, inv, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-14"}, inv.days)
}

func TestCreateAppointment_NoSlotNoInvalidation(t *testing.T) {
	repo := seededRepo()
	inv := &recordingInvalidator{}
	uc := NewCreateAppointment(repo, inv, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)
	assert.Empty(t, inv.days)
}

func TestUpdateStatus_CancelInvalidatesDayCache(t *testing.T) {
	repo := seededRepo()
	repo.Slots[10] = &models.AvailableSlot{ID: 10, Timestamp: slotTime, Available: true}

	created, err := NewCreateAppointment(repo, nil, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)

	inv := &recordingInvalidator{}
	_, err = NewUpdateStatus(repo, inv, nil).Execute(context.Background(), created.ID, status.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-14"}, inv.days)
}

func TestUpdateStatus_CompletePendingAppointment(t *testing.T) {
	repo := seededRepo()
	created, err := NewCreateAppointment(repo, nil, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)

	updated, err := NewUpdateStatus(repo, nil, nil).Execute(context.Background(), created.ID, status.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(status.StatusCompleted), updated.Status)
}

func TestUpdateStatus_TerminalIsFinal(t *testing.T) {
	repo := seededRepo()
	created, err := NewCreateAppointment(repo, nil, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)

	_, err = NewUpdateStatus(repo, nil, nil).Execute(context.Background(), created.ID, status.StatusCancelled)
	require.NoError(t, err)

	_, err = NewUpdateStatus(repo, nil, nil).Execute(context.Background(), created.ID, status.StatusCompleted)
	require.Error(t, err)
	assert.Equal(t, httperr.KindInvalidArgument, httperr.KindOf(err))
}

func TestUpdateStatus_CancelReopensSlot(t *testing.T) {
	repo := seededRepo()
	repo.Slots[10] = &models.AvailableSlot{ID: 10, Timestamp: slotTime, Available: true}

	created, err := NewCreateAppointment(repo, nil, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)
	require.True(t, repo.Slots[10].Booked)

	_, err = NewUpdateStatus(repo, nil, nil).Execute(context.Background(), created.ID, status.StatusCancelled)
	require.NoError(t, err)

	assert.False(t, repo.Slots[10].Booked)
	assert.True(t, repo.Slots[10].Available)
}

func TestUpdateStatus_RejectsUnknownLabel(t *testing.T) {
	repo := seededRepo()
	created, err := NewCreateAppointment(repo, nil, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)

	_, err = NewUpdateStatus(repo, nil, nil).Execute(context.Background(), created.ID, status.Status("Pendnte"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestQueries_ListByClient(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime.Add(time.Hour),
	})
	require.NoError(t, err)

	repo.Users[5] = &models.User{ID: 5, Email: "other@example.com"}
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 5, ServiceID: 3, ScheduledAt: slotTime.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	q := NewQueries(repo)
	mine, err := q.ListByClient(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := q.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestQueries_DeleteIsUnconditional(t *testing.T) {
	repo := seededRepo()
	created, err := NewCreateAppointment(repo, nil, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 3, ScheduledAt: slotTime,
	})
	require.NoError(t, err)

	require.NoError(t, NewQueries(repo).Delete(context.Background(), created.ID))
	_, stillThere := repo.Appointments[created.ID]
	assert.False(t, stillThere)
}
