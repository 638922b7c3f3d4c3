package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// DayFormat is the calendar-date key for per-day listings.
const DayFormat = "2006-01-02"

const dayTTL = time.Minute

// SlotCache keeps the per-date availability listing in redis. A nil
// *SlotCache is a valid always-miss cache, so redis stays optional.
type SlotCache struct {
	rdb *redis.Client
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	if rdb == nil {
		return nil
	}
	return &SlotCache{rdb: rdb}
}

func dayKey(day string) string {
	return "slots:available:" + day
}

func (c *SlotCache) GetDay(ctx context.Context, day string) ([]models.AvailableSlot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, dayKey(day)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []models.AvailableSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) SetDay(ctx context.Context, day string, slots []models.AvailableSlot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, dayKey(day), raw, dayTTL)
}

func (c *SlotCache) InvalidateDay(ctx context.Context, day string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, dayKey(day))
}
