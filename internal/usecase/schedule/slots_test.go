package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbarbershop/booking-api/internal/domain/booking/bookingtest"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

func day(h int) time.Time {
	return time.Date(2026, 9, 14, h, 0, 0, 0, time.UTC)
}

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) GetDay(_ context.Context, _ string) ([]models.AvailableSlot, bool) {
	return nil, false
}

func (c *recordingCache) SetDay(_ context.Context, _ string, _ []models.AvailableSlot) {}

func (c *recordingCache) InvalidateDay(_ context.Context, day string) {
	c.invalidated = append(c.invalidated, day)
}

func TestListAvailableByDate_WindowIsOneCalendarDay(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	repo.Slots[1] = &models.AvailableSlot{ID: 1, Timestamp: day(9), Available: true}
	repo.Slots[2] = &models.AvailableSlot{ID: 2, Timestamp: day(14), Available: true}
	repo.Slots[3] = &models.AvailableSlot{ID: 3, Timestamp: day(16), Available: false}
	repo.Slots[4] = &models.AvailableSlot{ID: 4, Timestamp: day(10).AddDate(0, 0, 1), Available: true}

	uc := NewSchedule(repo, nil)

	slots, err := uc.ListAvailableByDate(context.Background(), day(0))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, day(9), slots[0].Timestamp)
	assert.Equal(t, day(14), slots[1].Timestamp)
}

func TestSave_DuplicateTimestampConflicts(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	uc := NewSchedule(repo, nil)

	require.NoError(t, uc.Save(context.Background(), &models.AvailableSlot{Timestamp: day(9), Available: true}))

	err := uc.Save(context.Background(), &models.AvailableSlot{Timestamp: day(9), Available: true})
	require.Error(t, err)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
}

func TestSave_MoveToAnotherDateInvalidatesBothDays(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	repo.Slots[7] = &models.AvailableSlot{ID: 7, Timestamp: day(9), Available: true}

	rec := &recordingCache{}
	uc := NewSchedule(repo, rec)

	moved := &models.AvailableSlot{ID: 7, Timestamp: day(9).AddDate(0, 0, 2), Available: true}
	require.NoError(t, uc.Save(context.Background(), moved))

	assert.ElementsMatch(t, []string{"2026-09-16", "2026-09-14"}, rec.invalidated)
}

func TestSave_SameDateInvalidatesOnce(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	rec := &recordingCache{}
	uc := NewSchedule(repo, rec)

	require.NoError(t, uc.Save(context.Background(), &models.AvailableSlot{Timestamp: day(9), Available: true}))
	assert.Equal(t, []string{"2026-09-14"}, rec.invalidated)
}

func TestSetAvailability_TogglesSlot(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	repo.Slots[7] = &models.AvailableSlot{ID: 7, Timestamp: day(9), Available: true}

	uc := NewSchedule(repo, nil)

	updated, err := uc.SetAvailability(context.Background(), 7, false)
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.False(t, repo.Slots[7].Available)

	_, err = uc.SetAvailability(context.Background(), 404, true)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestDelete_UnknownSlot(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	uc := NewSchedule(repo, nil)

	err := uc.Delete(context.Background(), 42)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestDelete_RemovesSlot(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	repo.Slots[7] = &models.AvailableSlot{ID: 7, Timestamp: day(9), Available: true}

	uc := NewSchedule(repo, nil)

	require.NoError(t, uc.Delete(context.Background(), 7))
	_, stillThere := repo.Slots[7]
	assert.False(t, stillThere)
}
