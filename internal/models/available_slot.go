package models

import "time"

// AvailableSlot is a bookable calendar instant, independent of any
// appointment until one claims it.
type AvailableSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Timestamp time.Time `gorm:"uniqueIndex;not null" json:"timestamp"`
	Available bool      `gorm:"default:true" json:"available"`
	Booked    bool      `gorm:"default:false" json:"booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
