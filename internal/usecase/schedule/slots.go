package schedule

import (
	"context"
	"time"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/infra/cache"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// SlotCache is the per-date availability cache.
type SlotCache interface {
	GetDay(ctx context.Context, day string) ([]models.AvailableSlot, bool)
	SetDay(ctx context.Context, day string, slots []models.AvailableSlot)
	InvalidateDay(ctx context.Context, day string)
}

// Schedule manages the pool of bookable slots. The per-date availability
// listing goes through the redis cache; every mutation drops the day it
// touched.
type Schedule struct {
	repo  domain.Repository
	cache SlotCache
}

func NewSchedule(repo domain.Repository, c SlotCache) *Schedule {
	return &Schedule{repo: repo, cache: c}
}

func (uc *Schedule) invalidate(ctx context.Context, day string) {
	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, day)
	}
}

func (uc *Schedule) List(ctx context.Context) ([]models.AvailableSlot, error) {
	return uc.repo.ListSlots(ctx)
}

// ListAvailableByDate returns the bookable slots of one calendar date,
// from midnight to 23:59:59.
func (uc *Schedule) ListAvailableByDate(
	ctx context.Context,
	date time.Time,
) ([]models.AvailableSlot, error) {

	day := date.Format(cache.DayFormat)
	if uc.cache != nil {
		if slots, ok := uc.cache.GetDay(ctx, day); ok {
			return slots, nil
		}
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Second)

	slots, err := uc.repo.ListAvailableSlotsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetDay(ctx, day, slots)
	}
	return slots, nil
}

// Save upserts a slot. A duplicate timestamp surfaces as a conflict from
// the repository's unique index. An upsert that moves a slot to another
// date drops both the old and the new day's cached listing.
func (uc *Schedule) Save(ctx context.Context, s *models.AvailableSlot) error {
	var priorDay string
	if s.ID != 0 {
		if prev, err := uc.repo.GetSlotByID(ctx, s.ID); err == nil {
			priorDay = prev.Timestamp.Format(cache.DayFormat)
		}
	}

	if err := uc.repo.SaveSlot(ctx, s); err != nil {
		return err
	}

	day := s.Timestamp.Format(cache.DayFormat)
	uc.invalidate(ctx, day)
	if priorDay != "" && priorDay != day {
		uc.invalidate(ctx, priorDay)
	}
	return nil
}

func (uc *Schedule) Delete(ctx context.Context, id uint) error {
	slot, err := uc.repo.GetSlotByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteSlot(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, slot.Timestamp.Format(cache.DayFormat))
	return nil
}

func (uc *Schedule) SetAvailability(
	ctx context.Context,
	id uint,
	available bool,
) (*models.AvailableSlot, error) {

	var updated *models.AvailableSlot

	err := uc.repo.InTx(ctx, func(r domain.Repository) error {
		slot, err := r.GetSlotByID(ctx, id)
		if err != nil {
			return err
		}

		slot.Available = available
		if err := r.SaveSlot(ctx, slot); err != nil {
			return err
		}

		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, updated.Timestamp.Format(cache.DayFormat))
	return updated, nil
}
