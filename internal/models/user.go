package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	CPF          string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	PhotoURL     string `gorm:"size:255" json:"photo_url"`

	UserTypeID uint     `gorm:"not null" json:"user_type_id"`
	UserType   UserType `json:"user_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role is derived from the attached user type. Empty when the
// association was not preloaded.
func (u *User) Role() string {
	return u.UserType.Name
}
